package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/marek/mastermind-api/internal/config"
	"github.com/marek/mastermind-api/internal/database"
	"github.com/marek/mastermind-api/internal/handlers"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/middleware"
	"github.com/marek/mastermind-api/internal/routes"
	"github.com/marek/mastermind-api/internal/state"
	"github.com/marek/mastermind-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := storage.New(kvstore.New(db))
	if cfg.SeedDemo || cfg.ForceReset {
		store.Seed(cfg.ForceReset)
	}

	session := state.New(map[string]any{
		"currentMember": store.CurrentMember().ID,
		"currentWeek":   store.CurrentWeekNumber(),
	})
	session.SubscribeToKey("currentMember", func(value, prev any) {
		log.Printf("session: current member %v -> %v", prev, value)
	})

	app := fiber.New(fiber.Config{AppName: "mastermind-api"})
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	routes.Setup(app, handlers.New(store, session))

	log.Fatal(app.Listen(":" + cfg.Port))
}
