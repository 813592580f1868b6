package models

// CurrentWeek is the persisted week-navigation cursor. Quarter and year are
// stored alongside the week number but only the number is surfaced.
type CurrentWeek struct {
	WeekNumber int `json:"weekNumber"`
	Quarter    int `json:"quarter"`
	Year       int `json:"year"`
}
