package storage

import (
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/quarter"
)

// CurrentWeekNumber reads the persisted week cursor, defaulting to week 2 of
// the current quarter.
func (s *Store) CurrentWeekNumber() int {
	year, q := quarter.Current()
	stored := kvstore.Read(s.kv, keyCurrentWeek, models.CurrentWeek{
		WeekNumber: 2,
		Quarter:    q,
		Year:       year,
	})
	return stored.WeekNumber
}

func (s *Store) SetCurrentWeekNumber(weekNumber int) {
	year, q := quarter.Current()
	kvstore.Write(s.kv, keyCurrentWeek, models.CurrentWeek{
		WeekNumber: weekNumber,
		Quarter:    q,
		Year:       year,
	})
}
