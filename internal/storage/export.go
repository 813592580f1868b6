package storage

import (
	"strconv"
	"strings"
	"time"

	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// ExportAll snapshots every self-member collection, raw: habits include
// archived ones and no quarter filtering is applied.
func (s *Store) ExportAll() models.ExportDocument {
	return models.ExportDocument{
		Objectives:   kvstore.Read(s.kv, keyObjectives, []models.Objective{}),
		KeyResults:   kvstore.Read(s.kv, keyKeyResults, []models.KeyResult{}),
		Tasks:        kvstore.Read(s.kv, keyTasks, []models.Task{}),
		Habits:       kvstore.Read(s.kv, keyHabits, []models.Habit{}),
		HabitEntries: kvstore.Read(s.kv, keyHabitEntries, []models.HabitEntry{}),
		Vision:       s.Vision(""),
		Settings:     s.Settings(),
		ExportedAt:   time.Now().Format(time.RFC3339),
	}
}

// TasksCSV renders the task collection with the columns
// ID, Week, Description, Status, Created; the description is quoted.
func (s *Store) TasksCSV() string {
	tasks := kvstore.Read(s.kv, keyTasks, []models.Task{})

	var b strings.Builder
	b.WriteString("ID,Week,Description,Status,Created")
	for _, t := range tasks {
		b.WriteByte('\n')
		b.WriteString(t.ID)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(t.WeekNumber))
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(t.Description, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(string(t.Status))
		b.WriteByte(',')
		b.WriteString(t.CreatedAt)
	}
	return b.String()
}
