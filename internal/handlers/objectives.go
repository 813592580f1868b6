package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/metrics"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/storage"
)

type objectiveResponse struct {
	models.Objective
	Progress int `json:"progress"`
}

func (h *Handler) GetObjectives(c *fiber.Ctx) error {
	filter := storage.ObjectiveFilter{
		QuarterID: c.Query("quarter_id"),
		MemberID:  c.Query("member_id"),
	}
	objectives := h.store.Objectives(filter)
	keyResults := h.store.KeyResults(storage.KeyResultFilter{MemberID: filter.MemberID})

	out := make([]objectiveResponse, 0, len(objectives))
	for _, o := range objectives {
		krs := make([]models.KeyResult, 0, len(keyResults))
		for _, kr := range keyResults {
			if kr.ObjectiveID == o.ID {
				krs = append(krs, kr)
			}
		}
		out = append(out, objectiveResponse{Objective: o, Progress: metrics.ObjectiveProgress(krs)})
	}
	return c.JSON(out)
}

func (h *Handler) CreateObjective(c *fiber.Ctx) error {
	var req models.CreateObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "Title is required")
	}
	return c.JSON(h.store.SaveObjective(req))
}

func (h *Handler) UpdateObjective(c *fiber.Ctx) error {
	var patch models.ObjectivePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.store.UpdateObjective(c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteObjective(c *fiber.Ctx) error {
	h.store.DeleteObjective(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
