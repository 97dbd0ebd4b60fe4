package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// ListMealPlans returns the full weekly plan
func (h *Handler) ListMealPlans(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	entries, err := h.db.ListMealPlans(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, entries)
}

// ListMealPlansByDay returns the entries for one day
func (h *Handler) ListMealPlansByDay(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	day := c.Params("day")
	if !models.IsValidDay(day) {
		return Error(c, fiber.StatusBadRequest, "day must be one of Monday through Sunday")
	}

	entries, err := h.db.ListMealPlansByDay(c.Context(), userID, day)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, entries)
}

// CreateMealPlan adds a manual meal to a day
func (h *Handler) CreateMealPlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.CreateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	entry, err := h.planner.AddMeal(c.Context(), userID, req.MealName, req.DayOfWeek)
	if err != nil {
		return FromError(c, err)
	}
	return Created(c, entry)
}

// UpdateMealPlan applies a partial update to a meal-plan entry
func (h *Handler) UpdateMealPlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.UpdateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	entry, err := h.db.UpdateMealPlan(c.Context(), c.Params("id"), userID, &req)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, entry)
}

// DeleteMealPlan removes a single meal-plan entry
func (h *Handler) DeleteMealPlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.db.DeleteMealPlan(c.Context(), c.Params("id"), userID); err != nil {
		return FromError(c, err)
	}
	return Success(c, fiber.Map{"deleted": true})
}

// ClearMealPlansByDay removes every entry for a day. Clearing a day that is
// already empty succeeds with a message rather than failing.
func (h *Handler) ClearMealPlansByDay(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	day := c.Params("day")
	if !models.IsValidDay(day) {
		return Error(c, fiber.StatusBadRequest, "day must be one of Monday through Sunday")
	}

	result, err := h.db.ClearMealPlansByDay(c.Context(), userID, day)
	if err != nil {
		return FromError(c, err)
	}

	if len(result.Succeeded) == 0 && len(result.Failed) == 0 {
		return Success(c, fiber.Map{
			"message": "no meals to clear for " + day,
			"result":  result,
		})
	}
	return Success(c, result)
}

// MealPlanMatchStatus reports whether recipe reconciliation has run for an
// entry and what it found. Ids that were never reconciled, or whose record
// has aged out, report tracked=false.
func (h *Handler) MealPlanMatchStatus(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return FromError(c, err)
	}

	status, tracked := h.reconciler.Status(c.Params("id"))
	return Success(c, fiber.Map{
		"status":  status,
		"tracked": tracked,
	})
}

// GenerateMealPlanDay replaces a day with three AI-generated meals
func (h *Handler) GenerateMealPlanDay(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	entries, err := h.planner.GenerateDay(c.Context(), userID, c.Params("day"))
	if err != nil {
		return h.aiError(c, err)
	}
	return Success(c, entries)
}

// GenerateMealPlanWeek fills all seven days from a single model call
func (h *Handler) GenerateMealPlanWeek(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	week, err := h.planner.GenerateWeek(c.Context(), userID)
	if err != nil {
		return h.aiError(c, err)
	}
	return Success(c, week)
}
