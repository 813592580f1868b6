package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/models"
)

func (h *Handler) GetVision(c *fiber.Ctx) error {
	return c.JSON(h.store.Vision(c.Query("member_id")))
}

func (h *Handler) SaveVision(c *fiber.Ctx) error {
	var patch models.VisionPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(h.store.SaveVision(patch))
}
