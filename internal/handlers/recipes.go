package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

type findRecipesRequest struct {
	MealName string `json:"mealName"`
	Limit    int    `json:"limit"`
}

// FindRealRecipes searches the recipe API for real recipes matching a meal
// name. An empty name is rejected before any upstream call is made.
func (h *Handler) FindRealRecipes(c *fiber.Ctx) error {
	var req findRecipesRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "mealName is required")
	}
	if req.MealName == "" {
		return Error(c, fiber.StatusBadRequest, "mealName is required")
	}

	recipes, err := h.recipes.SearchRecipeByName(c.Context(), req.MealName, req.Limit)
	if err != nil {
		return h.recipeError(c, err)
	}
	return Success(c, recipes)
}

// recipeError maps recipe-API failures. A rejected key surfaces as a server
// misconfiguration with redacted key diagnostics so operators can compare
// against their RapidAPI dashboard.
func (h *Handler) recipeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrRecipeKeyMissing) {
		return Error(c, fiber.StatusInternalServerError,
			"RapidAPI key is not configured. Set RAPIDAPI_KEY and restart the server.")
	}
	var apiErr *apperrors.ApiError
	if errors.As(err, &apiErr) && apiErr.Code == apperrors.CodeUnauthorized {
		return c.Status(fiber.StatusInternalServerError).JSON(APIResponse{
			Success: false,
			Error:   "recipe API rejected the configured key; verify your RapidAPI subscription",
			Code:    string(apiErr.Code),
			Details: h.recipes.KeyDiagnostics(),
		})
	}
	return FromError(c, err)
}
