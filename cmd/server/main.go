package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Jsplashe/fridge-app-v2/internal/config"
	"github.com/Jsplashe/fridge-app-v2/internal/database"
	"github.com/Jsplashe/fridge-app-v2/internal/handlers"
	"github.com/Jsplashe/fridge-app-v2/internal/middleware"
	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create the demo user if a demo password is configured
	if err := database.EnsureDemoUser(db, cfg); err != nil {
		log.Printf("Warning: Could not ensure demo user: %v", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Initialize the optional S3-backed recipe-image cache
	var images *services.ImageCache
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		cache, err := services.NewImageCache(
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3Region, cfg.S3UseSSL,
		)
		if err != nil {
			log.Printf("Warning: S3 image cache disabled: %v", err)
		} else if err := cache.EnsureBucket(context.Background()); err != nil {
			log.Printf("Warning: S3 image cache disabled: %v", err)
		} else {
			images = cache
			log.Printf("Recipe-image cache enabled (bucket %s)", cfg.S3Bucket)
		}
	} else {
		log.Println("S3 not configured, recipe images are served from their source URLs")
	}

	// Create handler with dependencies
	h := handlers.New(db, cfg, images)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	// Public diagnostics
	api.Get("/spoonacular-test", h.SpoonacularTest)
	api.Get("/openai-test", h.OpenAITest)
	api.Get("/env-test", h.EnvTest)

	// Everything below requires a bearer token
	protected := api.Group("", middleware.AuthRequired(cfg))
	protected.Get("/auth/me", h.Me)

	inventory := protected.Group("/inventory")
	inventory.Get("/", h.ListInventory)
	inventory.Post("/", h.CreateInventoryItem)
	inventory.Get("/summary", h.InventorySummary)
	inventory.Get("/expiring", h.ExpiringInventory)
	inventory.Get("/:id", h.GetInventoryItem)
	inventory.Put("/:id", h.UpdateInventoryItem)
	inventory.Delete("/:id", h.DeleteInventoryItem)

	shopping := protected.Group("/shopping-list")
	shopping.Get("/", h.ListShoppingItems)
	shopping.Post("/", h.CreateShoppingItem)
	shopping.Delete("/", h.ClearShoppingList)
	shopping.Put("/:id", h.UpdateShoppingItem)
	shopping.Delete("/:id", h.DeleteShoppingItem)

	meals := protected.Group("/meal-plans")
	meals.Get("/", h.ListMealPlans)
	meals.Post("/", h.CreateMealPlan)
	meals.Get("/day/:day", h.ListMealPlansByDay)
	meals.Delete("/day/:day", h.ClearMealPlansByDay)
	meals.Post("/generate/day/:day", h.GenerateMealPlanDay)
	meals.Post("/generate/week", h.GenerateMealPlanWeek)
	meals.Get("/:id/match-status", h.MealPlanMatchStatus)
	meals.Put("/:id", h.UpdateMealPlan)
	meals.Delete("/:id", h.DeleteMealPlan)

	protected.Post("/meal-suggestions", h.MealSuggestions)
	protected.Post("/find-real-recipes", h.FindRealRecipes)

	protected.Get("/spending/weekly", h.WeeklySpending)
	protected.Post("/spending", h.CreateSpendingEntry)
	protected.Post("/waste", h.CreateWasteEntry)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
