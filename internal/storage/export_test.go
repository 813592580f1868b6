package storage

import (
	"strings"
	"testing"

	"github.com/marek/mastermind-api/internal/models"
)

func TestExportAllAggregatesCollections(t *testing.T) {
	s := newTestStore(t)
	s.Seed(false)
	habit := s.Habits("")[0]
	s.DeleteHabit(habit.ID)
	s.ToggleHabitEntry(habit.ID, "2026-08-29")

	doc := s.ExportAll()
	if len(doc.Objectives) != 3 || len(doc.KeyResults) != 7 || len(doc.Tasks) != 4 {
		t.Errorf("collection counts: %d objectives, %d key results, %d tasks",
			len(doc.Objectives), len(doc.KeyResults), len(doc.Tasks))
	}
	if len(doc.Habits) != 6 {
		t.Errorf("habits: got %d, want 6 — the export is raw, archived included", len(doc.Habits))
	}
	if len(doc.HabitEntries) != 1 {
		t.Errorf("habit entries: got %d, want 1", len(doc.HabitEntries))
	}
	if doc.ExportedAt == "" {
		t.Error("missing export timestamp")
	}
}

func TestTasksCSV(t *testing.T) {
	s := newTestStore(t)
	s.SaveTask(models.CreateTaskRequest{WeekNumber: 2, QuarterID: "q1-2026", Description: `say "hi", then run`, Status: models.TaskPlanned})

	csv := s.TasksCSV()
	lines := strings.Split(csv, "\n")
	if lines[0] != "ID,Week,Description,Status,Created" {
		t.Errorf("header: got %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], `"say ""hi"", then run"`) {
		t.Errorf("description not quoted correctly: %q", lines[1])
	}
	if !strings.Contains(lines[1], ",2,") || !strings.HasSuffix(lines[1], s.Tasks(TaskFilter{})[0].CreatedAt) {
		t.Errorf("row shape: %q", lines[1])
	}
}

func TestWeekAndReflectionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if got := s.CurrentWeekNumber(); got != 2 {
		t.Errorf("default week: got %d, want 2", got)
	}
	s.SetCurrentWeekNumber(7)
	if got := s.CurrentWeekNumber(); got != 7 {
		t.Errorf("week after set: got %d, want 7", got)
	}

	if got := s.WeeklyReflection("q1-2026", 7); got != "" {
		t.Errorf("unset reflection: got %q, want empty", got)
	}
	s.SaveWeeklyReflection("q1-2026", 7, "good week")
	if got := s.WeeklyReflection("q1-2026", 7); got != "good week" {
		t.Errorf("reflection: got %q", got)
	}
	if got := s.WeeklyReflection("q1-2026", 8); got != "" {
		t.Errorf("adjacent week leaked: %q", got)
	}
}
