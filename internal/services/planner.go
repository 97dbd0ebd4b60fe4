package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// placeholderMeal pads short model output so a generated day always ends up
// with a full set of slots.
const placeholderMeal = "AI Placeholder Meal"

// mealSlots is the fixed slot order for a single day.
var mealSlots = []string{"Breakfast", "Lunch", "Dinner"}

// PlannerStore is the slice of persistence the planner needs. *database.DB
// satisfies it.
type PlannerStore interface {
	ListInventoryNames(ctx context.Context, userID string) ([]string, error)
	CreateMealPlan(ctx context.Context, userID, mealName, day string, source models.MealSource) (*models.MealPlanEntry, error)
	ClearMealPlansByDay(ctx context.Context, userID, day string) (*models.BatchResult, error)
}

// Planner fills meal-plan days from AI suggestions. Created entries are
// handed to the reconciler, which attaches real recipes in the background.
type Planner struct {
	store       PlannerStore
	suggestions SuggestionGenerator
	reconciler  *Reconciler
}

// NewPlanner wires the planner. reconciler may be nil, in which case
// generated entries are left unmatched.
func NewPlanner(store PlannerStore, suggestions SuggestionGenerator, reconciler *Reconciler) *Planner {
	return &Planner{store: store, suggestions: suggestions, reconciler: reconciler}
}

// AddMeal creates a manually entered meal and hands it to the reconciler,
// which decorates it with a real recipe when one matches the name. A failed
// match leaves the entry as a plain manual meal.
func (p *Planner) AddMeal(ctx context.Context, userID, mealName, day string) (*models.MealPlanEntry, error) {
	entry, err := p.store.CreateMealPlan(ctx, userID, mealName, day, models.MealSourceManual)
	if err != nil {
		return nil, err
	}
	if p.reconciler != nil {
		if err := p.reconciler.Reconcile(ctx, entry); err != nil {
			log.Printf("recipe reconciliation for %q failed: %v", entry.MealName, err)
		}
	}
	return entry, nil
}

// GenerateDay replaces the given day with three AI-generated meals, one per
// slot. Existing entries for the day are cleared first; the clear and the
// inserts are separate statements, so a crash in between can leave the day
// empty until the next generation.
func (p *Planner) GenerateDay(ctx context.Context, userID, day string) ([]models.MealPlanEntry, error) {
	if !models.IsValidDay(day) {
		return nil, apperrors.NewValidation("day must be one of Monday through Sunday")
	}

	names, err := p.fridgeItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	suggestions, err := p.suggestions.GenerateSuggestions(ctx, names, len(mealSlots), []string{"breakfast", "lunch", "dinner"})
	if err != nil {
		return nil, err
	}

	cleared, err := p.store.ClearMealPlansByDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if len(cleared.Succeeded) > 0 {
		log.Printf("cleared %d existing meals for %s", len(cleared.Succeeded), day)
	}

	return p.createDay(ctx, userID, day, suggestions)
}

// GenerateWeek fills all seven days in a single model call, three meals per
// day in calendar order. Each day's existing entries are cleared as it is
// reached.
func (p *Planner) GenerateWeek(ctx context.Context, userID string) (map[string][]models.MealPlanEntry, error) {
	names, err := p.fridgeItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(mealSlots) * len(models.DaysOfWeek)
	suggestions, err := p.suggestions.GenerateSuggestions(ctx, names, total, []string{"breakfast", "lunch", "dinner"})
	if err != nil {
		return nil, err
	}

	week := make(map[string][]models.MealPlanEntry, len(models.DaysOfWeek))
	for i, day := range models.DaysOfWeek {
		if _, err := p.store.ClearMealPlansByDay(ctx, userID, day); err != nil {
			return nil, err
		}

		start := i * len(mealSlots)
		var slice []models.MealSuggestion
		if start < len(suggestions) {
			end := start + len(mealSlots)
			if end > len(suggestions) {
				end = len(suggestions)
			}
			slice = suggestions[start:end]
		}

		entries, err := p.createDay(ctx, userID, day, slice)
		if err != nil {
			return nil, err
		}
		week[day] = entries
	}
	return week, nil
}

// fridgeItems loads inventory names and rejects generation for an empty
// fridge before any model call is made.
func (p *Planner) fridgeItems(ctx context.Context, userID string) ([]string, error) {
	names, err := p.store.ListInventoryNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, apperrors.NewValidation("your fridge is empty; add inventory items before generating a meal plan")
	}
	return names, nil
}

func (p *Planner) createDay(ctx context.Context, userID, day string, suggestions []models.MealSuggestion) ([]models.MealPlanEntry, error) {
	entries := make([]models.MealPlanEntry, 0, len(mealSlots))
	for i, slot := range mealSlots {
		name := placeholderMeal
		if i < len(suggestions) && suggestions[i].Name != "" {
			name = suggestions[i].Name
		}

		entry, err := p.store.CreateMealPlan(ctx, userID, fmt.Sprintf("%s (%s)", name, slot), day, models.MealSourceAI)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)

		if p.reconciler != nil {
			if err := p.reconciler.Reconcile(ctx, entry); err != nil {
				log.Printf("recipe reconciliation for %q failed: %v", entry.MealName, err)
			}
		}
	}
	return entries, nil
}
