package storage

import (
	"testing"

	"github.com/marek/mastermind-api/internal/models"
)

func TestMembersAlwaysHaveSelf(t *testing.T) {
	s := newTestStore(t)
	members := s.Members()
	if len(members) == 0 {
		t.Fatal("expected at least the default members")
	}
	if members[0].ID != models.SelfMemberID {
		t.Errorf("first member: got %q, want %q", members[0].ID, models.SelfMemberID)
	}
}

func TestSaveMemberAppends(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Members())

	member := s.SaveMember(models.CreateMemberRequest{Name: "Robin", Initials: "RB", Color: "#ef4444"})
	if member.ID == "" {
		t.Error("expected a generated id")
	}

	after := s.Members()
	if len(after) != before+1 {
		t.Errorf("member count: got %d, want %d", len(after), before+1)
	}
	if after[len(after)-1].Name != "Robin" {
		t.Errorf("appended member: got %+v", after[len(after)-1])
	}
}

func TestCurrentMemberDefaultsToFirst(t *testing.T) {
	s := newTestStore(t)
	if got := s.CurrentMember().ID; got != models.SelfMemberID {
		t.Errorf("got %q, want the self member", got)
	}
}

func TestSetCurrentMemberRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.SetCurrentMember("member-3")
	if got := s.CurrentMember().ID; got != "member-3" {
		t.Errorf("got %q, want member-3", got)
	}
}

func TestCurrentMemberUnknownSelectionFallsBack(t *testing.T) {
	s := newTestStore(t)
	s.SetCurrentMember("ghost")
	if got := s.CurrentMember().ID; got != models.SelfMemberID {
		t.Errorf("got %q, want fallback to the first member", got)
	}
}

func TestMemberPartitioning(t *testing.T) {
	s := newTestStore(t)
	s.SaveObjective(models.CreateObjectiveRequest{QuarterID: "q1-2026", Title: "mine"})

	if got := s.Objectives(ObjectiveFilter{MemberID: "member-2"}); len(got) != 0 {
		t.Errorf("member-2 sees self data: %+v", got)
	}
	// Self id and empty id address the same unscoped key.
	scoped := s.Objectives(ObjectiveFilter{MemberID: models.SelfMemberID})
	if len(scoped) != 1 || scoped[0].Title != "mine" {
		t.Errorf("self-scoped read: got %+v", scoped)
	}
}
