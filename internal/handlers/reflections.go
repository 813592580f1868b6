package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetWeeklyReflection(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return badRequest(c, "Invalid week")
	}
	return c.JSON(fiber.Map{
		"quarter_id":  c.Params("quarterId"),
		"week_number": week,
		"notes":       h.store.WeeklyReflection(c.Params("quarterId"), week),
	})
}

func (h *Handler) SaveWeeklyReflection(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return badRequest(c, "Invalid week")
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	h.store.SaveWeeklyReflection(c.Params("quarterId"), week, req.Notes)
	return c.SendStatus(fiber.StatusNoContent)
}
