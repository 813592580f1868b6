// Package storage holds the entity repositories. Each collection lives under
// one namespaced key in the KV layer; the self member uses the bare keys and
// every other member gets a _<member-id> suffix. Operations read the whole
// collection, mutate it, and write it back — last write wins per key, there
// are no transaction boundaries.
package storage

import (
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// Legacy key namespace, preserved so data from earlier exports loads unchanged.
const (
	keyObjectives    = "mastermind_objectives"
	keyKeyResults    = "mastermind_key_results"
	keyTasks         = "mastermind_tasks"
	keyHabits        = "mastermind_habits"
	keyHabitEntries  = "mastermind_habit_entries"
	keyVision        = "mastermind_vision"
	keySettings      = "mastermind_settings"
	keyCurrentWeek   = "mastermind_current_week"
	keyMembers       = "mastermind_members"
	keyCurrentMember = "mastermind_current_member"
)

type Store struct {
	kv *kvstore.Store
}

func New(kv *kvstore.Store) *Store {
	return &Store{kv: kv}
}

// memberKey scopes base to a member. The self member (and the empty id,
// meaning "current scope unspecified") maps to the bare key.
func memberKey(base, memberID string) string {
	if memberID == "" || memberID == models.SelfMemberID {
		return base
	}
	return base + "_" + memberID
}
