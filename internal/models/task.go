package models

type TaskStatus string

const (
	TaskPlanned       TaskStatus = "planned"
	TaskInProgress    TaskStatus = "in_progress"
	TaskCompleted     TaskStatus = "completed"
	TaskCompletedPlus TaskStatus = "completed_plus"
	TaskPostponed     TaskStatus = "postponed"
	TaskTryAgain      TaskStatus = "try_again"
	TaskDeprecated    TaskStatus = "deprecated"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPlanned, TaskInProgress, TaskCompleted, TaskCompletedPlus,
		TaskPostponed, TaskTryAgain, TaskDeprecated:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	WeekNumber  int        `json:"week_number"` // 1-13 within the quarter
	QuarterID   string     `json:"quarter_id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	ObjectiveID string     `json:"objective_id,omitempty"` // optional, not validated against objectives
	CreatedAt   string     `json:"created_at"`
}

type CreateTaskRequest struct {
	WeekNumber  int        `json:"week_number"`
	QuarterID   string     `json:"quarter_id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	ObjectiveID string     `json:"objective_id,omitempty"`
}

type TaskPatch struct {
	WeekNumber  *int        `json:"week_number"`
	QuarterID   *string     `json:"quarter_id"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
	ObjectiveID *string     `json:"objective_id"`
}
