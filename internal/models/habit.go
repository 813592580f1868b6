package models

type Habit struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	IsActive   bool   `json:"is_active"` // soft-delete flag; inactive habits keep their entries
	OrderIndex int    `json:"order_index"`
}

type CreateHabitRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

type HabitPatch struct {
	Name       *string `json:"name"`
	Emoji      *string `json:"emoji"`
	IsActive   *bool   `json:"is_active"`
	OrderIndex *int    `json:"order_index"`
}
