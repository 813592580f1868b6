package storage

import (
	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// EntryFilter bounds are inclusive; dates are YYYY-MM-DD so plain string
// comparison orders them correctly.
type EntryFilter struct {
	StartDate string
	EndDate   string
	MemberID  string
}

func (s *Store) HabitEntries(f EntryFilter) []models.HabitEntry {
	entries := kvstore.Read(s.kv, memberKey(keyHabitEntries, f.MemberID), []models.HabitEntry{})
	filtered := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if f.StartDate != "" && e.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.Date > f.EndDate {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func (s *Store) EntriesForHabit(habitID string) []models.HabitEntry {
	entries := kvstore.Read(s.kv, keyHabitEntries, []models.HabitEntry{})
	filtered := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e.HabitID == habitID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ToggleHabitEntry flips the completed flag of the (habit, date) entry, or
// inserts a completed one when none exists. Repeated toggles of the same pair
// never create duplicates; only writes that bypass this path can.
func (s *Store) ToggleHabitEntry(habitID, date string) models.HabitEntry {
	entries := kvstore.Read(s.kv, keyHabitEntries, []models.HabitEntry{})
	for i := range entries {
		if entries[i].HabitID == habitID && entries[i].Date == date {
			entries[i].Completed = !entries[i].Completed
			kvstore.Write(s.kv, keyHabitEntries, entries)
			return entries[i]
		}
	}

	entry := models.HabitEntry{
		ID:        ident.New(),
		HabitID:   habitID,
		Date:      date,
		Completed: true,
	}
	kvstore.Write(s.kv, keyHabitEntries, append(entries, entry))
	return entry
}
