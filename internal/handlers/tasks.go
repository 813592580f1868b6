package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/storage"
)

func (h *Handler) GetTasks(c *fiber.Ctx) error {
	filter := storage.TaskFilter{
		QuarterID: c.Query("quarter_id"),
		MemberID:  c.Query("member_id"),
	}
	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "Invalid week")
		}
		filter.Week = &week
	}
	return c.JSON(h.store.Tasks(filter))
}

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Description == "" {
		return badRequest(c, "Description is required")
	}
	if req.Status == "" {
		req.Status = models.TaskPlanned
	}
	if !req.Status.Valid() {
		return badRequest(c, "Invalid task status")
	}
	return c.JSON(h.store.SaveTask(req))
}

func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	var patch models.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return badRequest(c, "Invalid task status")
	}
	h.store.UpdateTask(c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	h.store.DeleteTask(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
