package storage

import (
	"testing"
)

func TestToggleHabitEntryFlipsWithoutDuplicates(t *testing.T) {
	s := newTestStore(t)

	first := s.ToggleHabitEntry("habit-1", "2026-08-29")
	if !first.Completed {
		t.Error("first toggle should create a completed entry")
	}

	second := s.ToggleHabitEntry("habit-1", "2026-08-29")
	if second.Completed {
		t.Error("second toggle should flip to incomplete")
	}
	if second.ID != first.ID {
		t.Error("second toggle created a new record instead of flipping")
	}

	third := s.ToggleHabitEntry("habit-1", "2026-08-29")
	if !third.Completed {
		t.Error("third toggle should flip back to completed")
	}

	all := s.HabitEntries(EntryFilter{})
	if len(all) != 1 {
		t.Fatalf("got %d entries after three toggles of one pair, want 1", len(all))
	}
}

func TestToggleHabitEntrySeparatePairs(t *testing.T) {
	s := newTestStore(t)
	s.ToggleHabitEntry("habit-1", "2026-08-28")
	s.ToggleHabitEntry("habit-1", "2026-08-29")
	s.ToggleHabitEntry("habit-2", "2026-08-29")

	if got := len(s.HabitEntries(EntryFilter{})); got != 3 {
		t.Errorf("got %d entries, want 3 distinct (habit, date) pairs", got)
	}
	if got := len(s.EntriesForHabit("habit-1")); got != 2 {
		t.Errorf("habit-1 entries: got %d, want 2", got)
	}
}

func TestHabitEntriesDateRangeIsInclusive(t *testing.T) {
	s := newTestStore(t)
	for _, date := range []string{"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"} {
		s.ToggleHabitEntry("habit-1", date)
	}

	got := s.HabitEntries(EntryFilter{StartDate: "2026-08-26", EndDate: "2026-08-27"})
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Date < "2026-08-26" || e.Date > "2026-08-27" {
			t.Errorf("entry %q outside the inclusive range", e.Date)
		}
	}

	open := s.HabitEntries(EntryFilter{StartDate: "2026-08-27"})
	if len(open) != 2 {
		t.Errorf("open-ended range: got %d entries, want 2", len(open))
	}
}
