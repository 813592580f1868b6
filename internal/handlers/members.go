package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/models"
)

func (h *Handler) GetMembers(c *fiber.Ctx) error {
	return c.JSON(h.store.Members())
}

func (h *Handler) CreateMember(c *fiber.Ctx) error {
	var req models.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	return c.JSON(h.store.SaveMember(req))
}

func (h *Handler) GetCurrentMember(c *fiber.Ctx) error {
	return c.JSON(h.store.CurrentMember())
}

func (h *Handler) SetCurrentMember(c *fiber.Ctx) error {
	var req struct {
		MemberID string `json:"member_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.MemberID == "" {
		return badRequest(c, "member_id is required")
	}

	h.store.SetCurrentMember(req.MemberID)
	h.session.Set("currentMember", req.MemberID)
	return c.JSON(h.store.CurrentMember())
}
