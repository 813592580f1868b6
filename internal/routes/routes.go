package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marek/mastermind-api/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	members := api.Group("/members")
	members.Get("/", h.GetMembers)
	members.Post("/", h.CreateMember)
	members.Get("/current", h.GetCurrentMember)
	members.Put("/current", h.SetCurrentMember)

	objectives := api.Group("/objectives")
	objectives.Get("/", h.GetObjectives)
	objectives.Post("/", h.CreateObjective)
	objectives.Put("/:id", h.UpdateObjective)
	objectives.Delete("/:id", h.DeleteObjective)

	keyResults := api.Group("/key-results")
	keyResults.Get("/", h.GetKeyResults)
	keyResults.Post("/", h.CreateKeyResult)
	keyResults.Put("/:id", h.UpdateKeyResult)
	keyResults.Delete("/:id", h.DeleteKeyResult)

	tasks := api.Group("/tasks")
	tasks.Get("/", h.GetTasks)
	tasks.Post("/", h.CreateTask)
	tasks.Put("/:id", h.UpdateTask)
	tasks.Delete("/:id", h.DeleteTask)

	habits := api.Group("/habits")
	habits.Get("/", h.GetHabits)
	habits.Post("/", h.CreateHabit)
	habits.Put("/:id", h.UpdateHabit)
	habits.Delete("/:id", h.DeleteHabit)
	habits.Post("/:id/toggle", h.ToggleHabitEntry)
	habits.Get("/:id/streak", h.GetHabitStreak)

	api.Get("/habit-entries", h.GetHabitEntries)

	api.Get("/vision", h.GetVision)
	api.Put("/vision", h.SaveVision)

	api.Get("/settings", h.GetSettings)
	api.Put("/settings", h.SaveSettings)

	api.Get("/week", h.GetCurrentWeek)
	api.Put("/week", h.SetCurrentWeek)

	api.Get("/reflections/:quarterId/:week", h.GetWeeklyReflection)
	api.Put("/reflections/:quarterId/:week", h.SaveWeeklyReflection)

	api.Get("/overview", h.GetOverview)

	api.Get("/export", h.ExportJSON)
	api.Get("/export/tasks.csv", h.ExportTasksCSV)

	api.Post("/demo/reset", h.ResetDemoData)
}
