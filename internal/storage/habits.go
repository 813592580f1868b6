package storage

import (
	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// Habits lists the member's active habits. Archived habits stay in the raw
// collection but are never returned here.
func (s *Store) Habits(memberID string) []models.Habit {
	habits := s.rawHabits(memberID)
	active := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsActive {
			active = append(active, h)
		}
	}
	return active
}

func (s *Store) rawHabits(memberID string) []models.Habit {
	return kvstore.Read(s.kv, memberKey(keyHabits, memberID), []models.Habit{})
}

// SaveHabit assigns order_index from the raw collection length, archived
// habits included, matching how indices were issued historically.
func (s *Store) SaveHabit(req models.CreateHabitRequest) models.Habit {
	habits := s.rawHabits("")
	habit := models.Habit{
		ID:         ident.New(),
		Name:       req.Name,
		Emoji:      req.Emoji,
		IsActive:   true,
		OrderIndex: len(habits),
	}
	kvstore.Write(s.kv, keyHabits, append(habits, habit))
	return habit
}

func (s *Store) UpdateHabit(id string, patch models.HabitPatch) {
	habits := s.rawHabits("")
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if patch.Name != nil {
			habits[i].Name = *patch.Name
		}
		if patch.Emoji != nil {
			habits[i].Emoji = *patch.Emoji
		}
		if patch.IsActive != nil {
			habits[i].IsActive = *patch.IsActive
		}
		if patch.OrderIndex != nil {
			habits[i].OrderIndex = *patch.OrderIndex
		}
		kvstore.Write(s.kv, keyHabits, habits)
		return
	}
}

// DeleteHabit archives rather than removes, so the habit's entry history
// survives. Entries are never cascaded.
func (s *Store) DeleteHabit(id string) {
	inactive := false
	s.UpdateHabit(id, models.HabitPatch{IsActive: &inactive})
}
