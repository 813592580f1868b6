package models

// ExportDocument aggregates every collection for the self member, raw and
// unfiltered (inactive habits included), plus the export timestamp.
type ExportDocument struct {
	Objectives   []Objective  `json:"objectives"`
	KeyResults   []KeyResult  `json:"keyResults"`
	Tasks        []Task       `json:"tasks"`
	Habits       []Habit      `json:"habits"`
	HabitEntries []HabitEntry `json:"habitEntries"`
	Vision       VisionDoc    `json:"vision"`
	Settings     SettingsDoc  `json:"settings"`
	ExportedAt   string       `json:"exportedAt"`
}
