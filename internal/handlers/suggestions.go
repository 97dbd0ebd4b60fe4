package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

type mealSuggestionRequest struct {
	FridgeItems []string `json:"fridgeItems"`
	MealCount   int      `json:"mealCount"`
	MealTypes   []string `json:"mealTypes"`
}

// MealSuggestions asks the LLM for meal ideas based on the submitted
// fridge items. Suggestions are transient and never persisted.
func (h *Handler) MealSuggestions(c *fiber.Ctx) error {
	var req mealSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "fridgeItems must be a non-empty array of strings")
	}
	if len(req.FridgeItems) == 0 {
		return Error(c, fiber.StatusBadRequest, "fridgeItems must be a non-empty array of strings")
	}
	for _, item := range req.FridgeItems {
		if item == "" {
			return Error(c, fiber.StatusBadRequest, "fridgeItems must be a non-empty array of strings")
		}
	}

	suggestions, err := h.suggestions.GenerateSuggestions(c.Context(), req.FridgeItems, req.MealCount, req.MealTypes)
	if err != nil {
		return h.aiError(c, err)
	}
	return Success(c, suggestions)
}

// aiError maps LLM failures onto HTTP statuses: a missing key is a server
// misconfiguration, an unreachable upstream is a temporary outage.
func (h *Handler) aiError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrOpenAIKeyMissing) {
		return Error(c, fiber.StatusInternalServerError,
			"OpenAI API key is not configured properly. Set OPENAI_API_KEY and restart the server.")
	}
	if errors.Is(err, services.ErrOpenAIConnection) {
		return Error(c, fiber.StatusServiceUnavailable,
			"could not reach the AI service; please try again shortly")
	}
	return FromError(c, err)
}
