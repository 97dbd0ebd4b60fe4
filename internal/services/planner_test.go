package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

type fakePlannerStore struct {
	names   []string
	nextID  int
	ops     []string
	created []models.MealPlanEntry
}

func (f *fakePlannerStore) ListInventoryNames(ctx context.Context, userID string) ([]string, error) {
	return f.names, nil
}

func (f *fakePlannerStore) CreateMealPlan(ctx context.Context, userID, mealName, day string, source models.MealSource) (*models.MealPlanEntry, error) {
	f.nextID++
	entry := models.MealPlanEntry{
		ID:        fmt.Sprintf("entry-%d", f.nextID),
		UserID:    userID,
		MealName:  mealName,
		DayOfWeek: day,
		Source:    source,
	}
	f.ops = append(f.ops, "create:"+day)
	f.created = append(f.created, entry)
	return &entry, nil
}

func (f *fakePlannerStore) ClearMealPlansByDay(ctx context.Context, userID, day string) (*models.BatchResult, error) {
	f.ops = append(f.ops, "clear:"+day)
	return &models.BatchResult{}, nil
}

type fakeSuggestionGenerator struct {
	names []string
	err   error
	calls int
	count int
}

func (f *fakeSuggestionGenerator) GenerateSuggestions(ctx context.Context, fridgeItems []string, mealCount int, mealTypes []string) ([]models.MealSuggestion, error) {
	f.calls++
	f.count = mealCount
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MealSuggestion, 0, len(f.names))
	for _, n := range f.names {
		out = append(out, models.MealSuggestion{Name: n})
	}
	return out, nil
}

func TestAddMealReconcilesManualEntry(t *testing.T) {
	store := &fakePlannerStore{}
	searcher := &fakeSearcher{recipes: []models.Recipe{
		{ID: "42", Title: "Chicken Salad", Image: "https://img.example/42.jpg", ReadyInMinutes: 30},
	}}
	attacher := &fakeAttacher{}
	planner := NewPlanner(store, &fakeSuggestionGenerator{}, NewReconciler(searcher, attacher, nil))

	entry, err := planner.AddMeal(context.Background(), "user-1", "Chicken Salad", "Monday")
	require.NoError(t, err)

	assert.Equal(t, 1, searcher.calls, "a manual entry gets exactly one recipe search")
	assert.Equal(t, "Chicken Salad", searcher.lastName)
	assert.Equal(t, 1, attacher.calls)
	assert.Equal(t, models.MealSourceRecipe, entry.Source)
}

func TestAddMealSearchFailureKeepsManualEntry(t *testing.T) {
	store := &fakePlannerStore{}
	searcher := &fakeSearcher{err: errors.New("upstream down")}
	planner := NewPlanner(store, &fakeSuggestionGenerator{}, NewReconciler(searcher, &fakeAttacher{}, nil))

	entry, err := planner.AddMeal(context.Background(), "user-1", "Family Stew", "Sunday")
	require.NoError(t, err, "a failed match must not fail the create")
	assert.Equal(t, models.MealSourceManual, entry.Source)
	assert.Nil(t, entry.RecipeID)
}

func TestAddMealWithoutReconciler(t *testing.T) {
	store := &fakePlannerStore{}
	planner := NewPlanner(store, &fakeSuggestionGenerator{}, nil)

	entry, err := planner.AddMeal(context.Background(), "user-1", "Family Stew", "Sunday")
	require.NoError(t, err)
	assert.Equal(t, models.MealSourceManual, entry.Source)
}

func TestGenerateDayCreatesThreeSlots(t *testing.T) {
	store := &fakePlannerStore{names: []string{"chicken", "rice"}}
	gen := &fakeSuggestionGenerator{names: []string{"Veggie Omelette", "Chicken Salad", "Beef Stir Fry"}}
	planner := NewPlanner(store, gen, nil)

	entries, err := planner.GenerateDay(context.Background(), "user-1", "Monday")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Veggie Omelette (Breakfast)", entries[0].MealName)
	assert.Equal(t, "Chicken Salad (Lunch)", entries[1].MealName)
	assert.Equal(t, "Beef Stir Fry (Dinner)", entries[2].MealName)
	for _, e := range entries {
		assert.Equal(t, "Monday", e.DayOfWeek)
		assert.Equal(t, models.MealSourceAI, e.Source)
	}
}

func TestGenerateDayClearsBeforeCreating(t *testing.T) {
	store := &fakePlannerStore{names: []string{"eggs"}}
	gen := &fakeSuggestionGenerator{names: []string{"A", "B", "C"}}
	planner := NewPlanner(store, gen, nil)

	_, err := planner.GenerateDay(context.Background(), "user-1", "Friday")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(store.ops), 4)
	assert.Equal(t, "clear:Friday", store.ops[0])
	for _, op := range store.ops[1:] {
		assert.Equal(t, "create:Friday", op)
	}
}

func TestGenerateDayPadsShortOutput(t *testing.T) {
	store := &fakePlannerStore{names: []string{"eggs"}}
	gen := &fakeSuggestionGenerator{names: []string{"Only Meal"}}
	planner := NewPlanner(store, gen, nil)

	entries, err := planner.GenerateDay(context.Background(), "user-1", "Tuesday")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Only Meal (Breakfast)", entries[0].MealName)
	assert.Equal(t, "AI Placeholder Meal (Lunch)", entries[1].MealName)
	assert.Equal(t, "AI Placeholder Meal (Dinner)", entries[2].MealName)
}

func TestGenerateDayRejectsInvalidDay(t *testing.T) {
	store := &fakePlannerStore{names: []string{"eggs"}}
	gen := &fakeSuggestionGenerator{names: []string{"A"}}
	planner := NewPlanner(store, gen, nil)

	_, err := planner.GenerateDay(context.Background(), "user-1", "Funday")
	require.Error(t, err)
	assert.Equal(t, 0, gen.calls)
	assert.Empty(t, store.ops)
}

func TestGenerateDayEmptyFridge(t *testing.T) {
	store := &fakePlannerStore{}
	gen := &fakeSuggestionGenerator{}
	planner := NewPlanner(store, gen, nil)

	_, err := planner.GenerateDay(context.Background(), "user-1", "Monday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.Equal(t, 0, gen.calls, "no model call should be made for an empty fridge")
	assert.Empty(t, store.ops, "the existing plan must be left untouched")
}

func TestGenerateWeekDistributesSuggestions(t *testing.T) {
	store := &fakePlannerStore{names: []string{"chicken"}}
	names := make([]string, 21)
	for i := range names {
		names[i] = fmt.Sprintf("Meal %d", i+1)
	}
	gen := &fakeSuggestionGenerator{names: names}
	planner := NewPlanner(store, gen, nil)

	week, err := planner.GenerateWeek(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls, "the whole week should come from a single model call")
	assert.Equal(t, 21, gen.count)
	require.Len(t, week, 7)

	assert.Equal(t, "Meal 1 (Breakfast)", week["Monday"][0].MealName)
	assert.Equal(t, "Meal 3 (Dinner)", week["Monday"][2].MealName)
	assert.Equal(t, "Meal 19 (Breakfast)", week["Sunday"][0].MealName)
	assert.Equal(t, "Meal 21 (Dinner)", week["Sunday"][2].MealName)

	for _, day := range models.DaysOfWeek {
		require.Len(t, week[day], 3, "day %s", day)
	}
}

func TestGenerateWeekPadsShortOutput(t *testing.T) {
	store := &fakePlannerStore{names: []string{"chicken"}}
	gen := &fakeSuggestionGenerator{names: []string{"Meal 1", "Meal 2"}}
	planner := NewPlanner(store, gen, nil)

	week, err := planner.GenerateWeek(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Meal 1 (Breakfast)", week["Monday"][0].MealName)
	assert.Equal(t, "AI Placeholder Meal (Dinner)", week["Monday"][2].MealName)
	for _, e := range week["Wednesday"] {
		assert.True(t, strings.HasPrefix(e.MealName, "AI Placeholder Meal"))
	}
}
