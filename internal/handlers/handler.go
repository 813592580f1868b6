// Package handlers is the JSON boundary over the repositories. Handlers
// parse, delegate, and render; every repository call degrades to empty or
// default values, so there is no defensive error handling around reads.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/state"
	"github.com/marek/mastermind-api/internal/storage"
)

type Handler struct {
	store   *storage.Store
	session *state.Store
}

func New(store *storage.Store, session *state.Store) *Handler {
	return &Handler{store: store, session: session}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
