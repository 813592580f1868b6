package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/storage"
)

func (h *Handler) GetKeyResults(c *fiber.Ctx) error {
	return c.JSON(h.store.KeyResults(storage.KeyResultFilter{
		ObjectiveID: c.Query("objective_id"),
		MemberID:    c.Query("member_id"),
	}))
}

func (h *Handler) CreateKeyResult(c *fiber.Ctx) error {
	var req models.CreateKeyResultRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ObjectiveID == "" {
		return badRequest(c, "objective_id is required")
	}
	return c.JSON(h.store.SaveKeyResult(req))
}

func (h *Handler) UpdateKeyResult(c *fiber.Ctx) error {
	var patch models.KeyResultPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.store.UpdateKeyResult(c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteKeyResult(c *fiber.Ctx) error {
	h.store.DeleteKeyResult(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
