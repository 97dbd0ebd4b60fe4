package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/config"
	"github.com/Jsplashe/fridge-app-v2/internal/database"
	"github.com/Jsplashe/fridge-app-v2/internal/middleware"
	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	db          *database.DB
	cfg         *config.Config
	llm         *services.OpenAIService
	recipes     *services.SpoonacularService
	suggestions services.SuggestionGenerator
	planner     *services.Planner
	reconciler  *services.Reconciler
}

// New creates a new Handler instance with the full service graph. images
// may be nil when no object store is configured.
func New(db *database.DB, cfg *config.Config, images *services.ImageCache) *Handler {
	llm := services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	recipes := services.NewSpoonacularService(cfg.RapidAPIKey, cfg.RapidAPIHost)
	suggestions := services.NewSuggestionService(llm)
	reconciler := services.NewReconciler(recipes, db, images)

	return &Handler{
		db:          db,
		cfg:         cfg,
		llm:         llm,
		recipes:     recipes,
		suggestions: suggestions,
		planner:     services.NewPlanner(db, suggestions, reconciler),
		reconciler:  reconciler,
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}

// APIResponse is a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Created returns a successful creation response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Error returns an error response
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}

// FromError maps a taxonomy error onto an HTTP status and response body,
// including the machine-readable code and any diagnostic details.
func FromError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	details := errorDetails(err)

	switch apperrors.CodeOf(err) {
	case apperrors.CodeValidation:
		status = fiber.StatusBadRequest
	case apperrors.CodeAuthRequired:
		status = fiber.StatusUnauthorized
	case apperrors.CodeUnauthorized:
		status = fiber.StatusForbidden
	case apperrors.CodeNotFound:
		status = fiber.StatusNotFound
	case apperrors.CodeAlreadyExists:
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   err.Error(),
		Code:    string(apperrors.CodeOf(err)),
		Details: details,
	})
}

func errorDetails(err error) interface{} {
	var apiErr *apperrors.ApiError
	if errors.As(err, &apiErr) && len(apiErr.Details) > 0 {
		return apiErr.Details
	}
	return nil
}

func getUserID(c *fiber.Ctx) (string, error) {
	id := middleware.GetUserID(c)
	if id == "" {
		return "", apperrors.NewAuth("authentication required", apperrors.CodeAuthRequired)
	}
	return id, nil
}
