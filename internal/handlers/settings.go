package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/models"
)

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.store.Settings())
}

func (h *Handler) SaveSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if patch.Theme != nil && *patch.Theme != "dark" && *patch.Theme != "light" {
		return badRequest(c, "Invalid theme")
	}
	return c.JSON(h.store.SaveSettings(patch))
}
