package storage

import (
	"time"

	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

// TaskFilter conditions are AND-combined; a nil Week means any week.
type TaskFilter struct {
	Week      *int
	QuarterID string
	MemberID  string
}

func (s *Store) Tasks(f TaskFilter) []models.Task {
	tasks := kvstore.Read(s.kv, memberKey(keyTasks, f.MemberID), []models.Task{})
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Week != nil && t.WeekNumber != *f.Week {
			continue
		}
		if f.QuarterID != "" && t.QuarterID != f.QuarterID {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func (s *Store) SaveTask(req models.CreateTaskRequest) models.Task {
	tasks := s.Tasks(TaskFilter{})
	task := models.Task{
		ID:          ident.New(),
		WeekNumber:  req.WeekNumber,
		QuarterID:   req.QuarterID,
		Description: req.Description,
		Status:      req.Status,
		ObjectiveID: req.ObjectiveID,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	kvstore.Write(s.kv, keyTasks, append(tasks, task))
	return task
}

func (s *Store) UpdateTask(id string, patch models.TaskPatch) {
	tasks := s.Tasks(TaskFilter{})
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if patch.WeekNumber != nil {
			tasks[i].WeekNumber = *patch.WeekNumber
		}
		if patch.QuarterID != nil {
			tasks[i].QuarterID = *patch.QuarterID
		}
		if patch.Description != nil {
			tasks[i].Description = *patch.Description
		}
		if patch.Status != nil {
			tasks[i].Status = *patch.Status
		}
		if patch.ObjectiveID != nil {
			tasks[i].ObjectiveID = *patch.ObjectiveID
		}
		kvstore.Write(s.kv, keyTasks, tasks)
		return
	}
}

func (s *Store) DeleteTask(id string) {
	tasks := s.Tasks(TaskFilter{})
	remaining := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	kvstore.Write(s.kv, keyTasks, remaining)
}
