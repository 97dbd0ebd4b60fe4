package models

import (
	"strings"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
)

// DaysOfWeek is the fixed ordering used for the weekly calendar and for
// distributing generated meals.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealSource records how a meal-plan entry was produced and whether a real
// recipe has been attached.
type MealSource string

const (
	MealSourceManual MealSource = "manual"
	MealSourceAI     MealSource = "ai"
	MealSourceRecipe MealSource = "recipe"
)

// MealPlanEntry is a named meal assigned to a day of the week. The recipe
// fields are a best-effort decoration filled in by reconciliation.
type MealPlanEntry struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	MealName       string     `json:"meal_name"`
	DayOfWeek      string     `json:"day_of_week"`
	Source         MealSource `json:"source"`
	RecipeID       *string    `json:"recipe_id,omitempty"`
	RecipeImage    *string    `json:"recipe_image,omitempty"`
	ReadyInMinutes *int       `json:"ready_in_minutes,omitempty"`
	Servings       *int       `json:"servings,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateMealPlanRequest is the request body for adding a meal to a day.
type CreateMealPlanRequest struct {
	MealName  string `json:"meal_name"`
	DayOfWeek string `json:"day_of_week"`
}

// UpdateMealPlanRequest is the request body for partial updates.
type UpdateMealPlanRequest struct {
	MealName  *string `json:"meal_name,omitempty"`
	DayOfWeek *string `json:"day_of_week,omitempty"`
}

// BatchResult reports the outcome of a bulk delete as a first-class value
// instead of ad hoc failure counters.
type BatchResult struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// IsValidDay reports whether day is one of the seven fixed values.
func IsValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Validate checks the meal name and day.
func (r *CreateMealPlanRequest) Validate() error {
	if len(strings.TrimSpace(r.MealName)) < 2 {
		return apperrors.NewValidation("meal name must be at least 2 characters")
	}
	if !IsValidDay(r.DayOfWeek) {
		return apperrors.NewValidation("day_of_week must be one of Monday through Sunday")
	}
	return nil
}

// Validate checks any provided fields.
func (r *UpdateMealPlanRequest) Validate() error {
	if r.MealName != nil && len(strings.TrimSpace(*r.MealName)) < 2 {
		return apperrors.NewValidation("meal name must be at least 2 characters")
	}
	if r.DayOfWeek != nil && !IsValidDay(*r.DayOfWeek) {
		return apperrors.NewValidation("day_of_week must be one of Monday through Sunday")
	}
	return nil
}
