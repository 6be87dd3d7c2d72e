package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/config"
	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/integrations/gemini"
	"github.com/slight125/FarmFlow/routes"
)

func main() {
	cfg := config.Load()
	config.ApplyLogLevel(cfg.LogLevel)
	log := config.GetLogger()

	database.ConnectDB(cfg.DatabaseURL)
	if cfg.SeedDB {
		if err := database.Seed(database.DB); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	// The assistant backend is decided once at boot. No credential means the
	// rule-based bot serves every chat until the process restarts.
	var gen assistant.TextGenerator
	client, err := gemini.NewClientFromEnv()
	if err != nil {
		log.Warnf("⚠️ %v, chat runs on the built-in rule bot", err)
	} else {
		gen = client
	}
	responder := assistant.NewResponder(database.DB, gen)

	app := fiber.New(fiber.Config{
		AppName: "FarmFlow",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "farmflow-api",
			"status":  "ok",
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupCropRoutes(app)
	routes.SetupLivestockRoutes(app)
	routes.SetupInventoryRoutes(app)
	routes.SetupFinanceRoutes(app)
	routes.SetupTaskRoutes(app)
	routes.SetupActivityRoutes(app)
	routes.SetupWeatherRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupAnalyticsRoutes(app)
	routes.SetupChatRoutes(app, responder)

	log.Infof("🚀 FarmFlow API on http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
