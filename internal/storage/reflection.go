package storage

import (
	"fmt"

	"github.com/marek/mastermind-api/internal/kvstore"
)

func reflectionKey(quarterID string, weekNumber int) string {
	return fmt.Sprintf("mastermind_reflection_%s_%d", quarterID, weekNumber)
}

// WeeklyReflection is the free-form notes blob for one week of a quarter.
func (s *Store) WeeklyReflection(quarterID string, weekNumber int) string {
	return kvstore.Read(s.kv, reflectionKey(quarterID, weekNumber), "")
}

func (s *Store) SaveWeeklyReflection(quarterID string, weekNumber int, notes string) {
	kvstore.Write(s.kv, reflectionKey(quarterID, weekNumber), notes)
}
