package storage

import (
	"testing"
	"time"

	"github.com/marek/mastermind-api/internal/models"
)

func TestSaveTaskSetsIDAndCreatedAt(t *testing.T) {
	s := newTestStore(t)
	task := s.SaveTask(models.CreateTaskRequest{WeekNumber: 2, QuarterID: "q1-2026", Description: "write report", Status: models.TaskPlanned})

	if task.ID == "" {
		t.Error("expected a generated id")
	}
	if _, err := time.Parse(time.RFC3339, task.CreatedAt); err != nil {
		t.Errorf("created_at %q is not RFC 3339: %v", task.CreatedAt, err)
	}
}

func TestTasksFiltersAreANDCombined(t *testing.T) {
	s := newTestStore(t)
	s.SaveTask(models.CreateTaskRequest{WeekNumber: 1, QuarterID: "q1-2026", Description: "w1 q1", Status: models.TaskPlanned})
	s.SaveTask(models.CreateTaskRequest{WeekNumber: 2, QuarterID: "q1-2026", Description: "w2 q1", Status: models.TaskPlanned})
	s.SaveTask(models.CreateTaskRequest{WeekNumber: 2, QuarterID: "q2-2026", Description: "w2 q2", Status: models.TaskPlanned})

	week := 2
	both := s.Tasks(TaskFilter{Week: &week, QuarterID: "q1-2026"})
	if len(both) != 1 || both[0].Description != "w2 q1" {
		t.Errorf("week+quarter: got %+v", both)
	}

	weekOnly := s.Tasks(TaskFilter{Week: &week})
	if len(weekOnly) != 2 {
		t.Errorf("week only: got %d tasks, want 2", len(weekOnly))
	}

	all := s.Tasks(TaskFilter{})
	if len(all) != 3 {
		t.Errorf("no filter: got %d tasks, want 3", len(all))
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newTestStore(t)
	task := s.SaveTask(models.CreateTaskRequest{WeekNumber: 3, QuarterID: "q1-2026", Description: "demo", Status: models.TaskPlanned})

	status := models.TaskCompleted
	s.UpdateTask(task.ID, models.TaskPatch{Status: &status})

	got := s.Tasks(TaskFilter{})[0]
	if got.Status != models.TaskCompleted {
		t.Errorf("status: got %q, want %q", got.Status, models.TaskCompleted)
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	task := s.SaveTask(models.CreateTaskRequest{WeekNumber: 3, QuarterID: "q1-2026", Description: "demo", Status: models.TaskPlanned})

	status := models.TaskDeprecated
	s.UpdateTask("missing", models.TaskPatch{Status: &status})

	all := s.Tasks(TaskFilter{})
	if len(all) != 1 || all[0] != task {
		t.Errorf("collection changed: %+v", all)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	doomed := s.SaveTask(models.CreateTaskRequest{WeekNumber: 1, QuarterID: "q1-2026", Description: "doomed", Status: models.TaskPlanned})
	s.SaveTask(models.CreateTaskRequest{WeekNumber: 1, QuarterID: "q1-2026", Description: "kept", Status: models.TaskPlanned})

	s.DeleteTask(doomed.ID)

	got := s.Tasks(TaskFilter{})
	if len(got) != 1 || got[0].Description != "kept" {
		t.Errorf("got %+v, want only the kept task", got)
	}
}
