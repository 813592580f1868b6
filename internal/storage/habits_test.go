package storage

import (
	"testing"

	"github.com/marek/mastermind-api/internal/models"
)

func TestDeleteHabitIsSoft(t *testing.T) {
	s := newTestStore(t)
	habit := s.SaveHabit(models.CreateHabitRequest{Name: "Meditation", Emoji: "🧘"})
	s.SaveHabit(models.CreateHabitRequest{Name: "Exercise", Emoji: "💪"})

	s.DeleteHabit(habit.ID)

	active := s.Habits("")
	if len(active) != 1 || active[0].Name != "Exercise" {
		t.Errorf("active habits: got %+v", active)
	}

	raw := s.rawHabits("")
	if len(raw) != 2 {
		t.Fatalf("raw habits: got %d, want 2 (archived record retained)", len(raw))
	}
	if raw[0].IsActive {
		t.Error("archived habit still marked active")
	}
}

func TestSaveHabitOrderIndexCountsArchived(t *testing.T) {
	s := newTestStore(t)
	first := s.SaveHabit(models.CreateHabitRequest{Name: "a"})
	s.DeleteHabit(first.ID)

	second := s.SaveHabit(models.CreateHabitRequest{Name: "b"})
	if second.OrderIndex != 1 {
		t.Errorf("order_index: got %d, want 1 (archived rows still count)", second.OrderIndex)
	}
}

func TestDeleteHabitKeepsEntries(t *testing.T) {
	s := newTestStore(t)
	habit := s.SaveHabit(models.CreateHabitRequest{Name: "Reading", Emoji: "📚"})
	s.ToggleHabitEntry(habit.ID, "2026-08-28")

	s.DeleteHabit(habit.ID)

	entries := s.EntriesForHabit(habit.ID)
	if len(entries) != 1 {
		t.Errorf("entries after soft delete: got %d, want 1", len(entries))
	}
}
