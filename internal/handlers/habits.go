package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/metrics"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/storage"
)

func (h *Handler) GetHabits(c *fiber.Ctx) error {
	return c.JSON(h.store.Habits(c.Query("member_id")))
}

func (h *Handler) CreateHabit(c *fiber.Ctx) error {
	var req models.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	return c.JSON(h.store.SaveHabit(req))
}

func (h *Handler) UpdateHabit(c *fiber.Ctx) error {
	var patch models.HabitPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.store.UpdateHabit(c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteHabit archives the habit; its entries stay behind.
func (h *Handler) DeleteHabit(c *fiber.Ctx) error {
	h.store.DeleteHabit(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleHabitEntry flips today's (or the given date's) entry for a habit.
func (h *Handler) ToggleHabitEntry(c *fiber.Ctx) error {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}
	return c.JSON(h.store.ToggleHabitEntry(c.Params("id"), req.Date))
}

func (h *Handler) GetHabitEntries(c *fiber.Ctx) error {
	return c.JSON(h.store.HabitEntries(storage.EntryFilter{
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
		MemberID:  c.Query("member_id"),
	}))
}

func (h *Handler) GetHabitStreak(c *fiber.Ctx) error {
	entries := h.store.EntriesForHabit(c.Params("id"))
	return c.JSON(fiber.Map{
		"habit_id": c.Params("id"),
		"streak":   metrics.Streak(entries, time.Now()),
	})
}
