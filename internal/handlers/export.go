package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/middleware"
)

func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	doc := h.store.ExportAll()
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="mastermind-export-%s.json"`, time.Now().Format("2006-01-02")))
	return c.JSON(doc)
}

func (h *Handler) ExportTasksCSV(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="mastermind-tasks-%s.csv"`, time.Now().Format("2006-01-02")))
	return c.SendString(h.store.TasksCSV())
}

// ResetDemoData wipes member-scoped data and reseeds the demo sets.
func (h *Handler) ResetDemoData(c *fiber.Ctx) error {
	log.Printf("demo data reset requested (request %s)", middleware.GetRequestID(c))
	h.store.ResetMemberData()
	return c.JSON(fiber.Map{
		"status": "reset",
	})
}
