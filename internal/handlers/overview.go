package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/metrics"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/quarter"
	"github.com/marek/mastermind-api/internal/storage"
)

type habitStreak struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Streak  int    `json:"streak"`
}

// GetOverview returns the dashboard numbers: portfolio progress, per-objective
// progress, the trailing-week habit completion rate, and per-habit streaks.
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	memberID := c.Query("member_id")
	quarterID := c.Query("quarter_id")
	if quarterID == "" {
		quarterID = quarter.CurrentID()
	}

	objectives := h.store.Objectives(storage.ObjectiveFilter{QuarterID: quarterID, MemberID: memberID})
	keyResults := h.store.KeyResults(storage.KeyResultFilter{MemberID: memberID})
	habits := h.store.Habits(memberID)

	progress := make([]objectiveResponse, 0, len(objectives))
	for _, o := range objectives {
		krs := make([]models.KeyResult, 0)
		for _, kr := range keyResults {
			if kr.ObjectiveID == o.ID {
				krs = append(krs, kr)
			}
		}
		progress = append(progress, objectiveResponse{Objective: o, Progress: metrics.ObjectiveProgress(krs)})
	}

	today := time.Now()
	weekStart := today.AddDate(0, 0, -6)
	entries := h.store.HabitEntries(storage.EntryFilter{
		StartDate: weekStart.Format("2006-01-02"),
		EndDate:   today.Format("2006-01-02"),
		MemberID:  memberID,
	})

	// The rate's denominator counts active habits only, so archived habits'
	// entries must not feed the numerator either.
	active := make(map[string]bool, len(habits))
	for _, habit := range habits {
		active[habit.ID] = true
	}
	weekEntries := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if active[e.HabitID] {
			weekEntries = append(weekEntries, e)
		}
	}

	streaks := make([]habitStreak, 0, len(habits))
	for _, habit := range habits {
		all := h.store.EntriesForHabit(habit.ID)
		streaks = append(streaks, habitStreak{
			HabitID: habit.ID,
			Name:    habit.Name,
			Emoji:   habit.Emoji,
			Streak:  metrics.Streak(all, today),
		})
	}

	resp := fiber.Map{
		"quarter_id":       quarterID,
		"overall_progress": metrics.OverallProgress(objectives, keyResults),
		"objectives":       progress,
		"weekly_rate":      metrics.WeeklyCompletionRate(len(habits), weekEntries, weekStart, today),
		"streaks":          streaks,
	}
	if year, q, ok := quarter.ParseID(quarterID); ok {
		start := quarter.StartDate(year, q)
		resp["quarter_start"] = start.Format("2006-01-02")
		resp["quarter_end"] = quarter.EndDate(year, q).Format("2006-01-02")
		resp["week_in_quarter"] = quarter.WeekNumber(today, start)
	}
	return c.JSON(resp)
}
