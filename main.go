package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"hazmana/api-gateway/config"
	"hazmana/api-gateway/handlers"
	"hazmana/api-gateway/internal/aiclient"
	"hazmana/api-gateway/middleware"
)

func main() {
	// Optional in production; local development keeps settings in .env.
	_ = godotenv.Load()

	config.InitLogger()

	if err := config.InitSupabase(); err != nil {
		config.Log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	imageGen := aiclient.New(config.ImageAPIURL())
	defer imageGen.Close()

	appHandler := handlers.NewApplicationHandler(imageGen, config.Log)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "API Gateway is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	// Catalog routes (public)
	apiV1.Get("/templates", handlers.GetTemplates)
	apiV1.Get("/canvas-sizes", handlers.GetCanvasSizes)

	// Image routes (public)
	apiV1.Post("/generate-background", appHandler.GenerateBackground)
	apiV1.Get("/proxy-image", handlers.ProxyImage)

	// Invitation routes (authenticated; RLS scopes rows to the caller)
	invitations := apiV1.Group("/invitations", middleware.RequireToken())
	invitations.Get("", handlers.ListInvitations)
	invitations.Post("", handlers.CreateInvitation)
	invitations.Get("/:id", handlers.GetInvitation)
	invitations.Delete("/:id", handlers.DeleteInvitation)

	// Admin routes (authenticated + admin email check in the handlers)
	admin := apiV1.Group("/admin", middleware.RequireToken())
	admin.Get("/invitations", handlers.AdminListInvitations)
	admin.Delete("/invitations", handlers.AdminDeleteInvitation)
	admin.Get("/stats", handlers.AdminStats)
	admin.Get("/users", handlers.AdminListUsers)

	config.Log.Infof("Starting API Gateway on port %s...", config.Port())
	config.Log.Fatal(app.Listen(":" + config.Port()))
}
