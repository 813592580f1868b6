package storage

import (
	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// DefaultMembers is the built-in group. The first entry is the self member
// and is never partitioned.
func DefaultMembers() []models.Member {
	return []models.Member{
		{ID: "member-1", Name: "You", Initials: "ME", Color: "#f59e0b"},
		{ID: "member-2", Name: "Alex", Initials: "AK", Color: "#3b82f6"},
		{ID: "member-3", Name: "Jordan", Initials: "JM", Color: "#22c55e"},
		{ID: "member-4", Name: "Sam", Initials: "SW", Color: "#a855f7"},
	}
}

func (s *Store) Members() []models.Member {
	return kvstore.Read(s.kv, keyMembers, DefaultMembers())
}

func (s *Store) SaveMember(req models.CreateMemberRequest) models.Member {
	members := s.Members()
	member := models.Member{
		ID:       ident.New(),
		Name:     req.Name,
		Initials: req.Initials,
		Color:    req.Color,
	}
	kvstore.Write(s.kv, keyMembers, append(members, member))
	return member
}

// CurrentMember resolves the persisted selection, falling back to the first
// member when the selection is missing or points at a removed member.
func (s *Store) CurrentMember() models.Member {
	members := s.Members()
	if len(members) == 0 {
		members = DefaultMembers()
	}
	currentID := kvstore.Read(s.kv, keyCurrentMember, members[0].ID)
	for _, m := range members {
		if m.ID == currentID {
			return m
		}
	}
	return members[0]
}

func (s *Store) SetCurrentMember(memberID string) {
	kvstore.Write(s.kv, keyCurrentMember, memberID)
}
