package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCurrentWeek(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"week_number": h.store.CurrentWeekNumber(),
	})
}

func (h *Handler) SetCurrentWeek(c *fiber.Ctx) error {
	var req struct {
		WeekNumber int `json:"week_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.WeekNumber < 1 || req.WeekNumber > 13 {
		return badRequest(c, "week_number must be between 1 and 13")
	}

	h.store.SetCurrentWeekNumber(req.WeekNumber)
	h.session.Set("currentWeek", req.WeekNumber)
	return c.JSON(fiber.Map{
		"week_number": req.WeekNumber,
	})
}
