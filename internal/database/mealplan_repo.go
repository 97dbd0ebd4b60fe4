package database

import (
	"context"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

const mealPlanColumns = `id, user_id, meal_name, day_of_week, source,
	recipe_id, recipe_image, ready_in_minutes, servings, created_at`

func scanMealPlan(row interface{ Scan(...interface{}) error }) (*models.MealPlanEntry, error) {
	entry := &models.MealPlanEntry{}
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.MealName, &entry.DayOfWeek, &entry.Source,
		&entry.RecipeID, &entry.RecipeImage, &entry.ReadyInMinutes, &entry.Servings,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListMealPlans returns all of a user's meal-plan entries.
func (db *DB) ListMealPlans(ctx context.Context, userID string) ([]*models.MealPlanEntry, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+mealPlanColumns+`
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plans")
	}
	defer rows.Close()

	var entries []*models.MealPlanEntry
	for rows.Next() {
		entry, err := scanMealPlan(rows)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "meal plans")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ListMealPlansByDay returns a user's entries for one day of the week.
func (db *DB) ListMealPlansByDay(ctx context.Context, userID, day string) ([]*models.MealPlanEntry, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+mealPlanColumns+`
		FROM meal_plans
		WHERE user_id = $1 AND day_of_week = $2
		ORDER BY created_at ASC
	`, userID, day)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plans")
	}
	defer rows.Close()

	var entries []*models.MealPlanEntry
	for rows.Next() {
		entry, err := scanMealPlan(rows)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "meal plans")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// CreateMealPlan inserts a new entry.
func (db *DB) CreateMealPlan(ctx context.Context, userID, mealName, day string, source models.MealSource) (*models.MealPlanEntry, error) {
	entry, err := scanMealPlan(db.Pool.QueryRow(ctx, `
		INSERT INTO meal_plans (user_id, meal_name, day_of_week, source)
		VALUES ($1, $2, $3, $4)
		RETURNING `+mealPlanColumns+`
	`, userID, mealName, day, source))
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plan")
	}
	return entry, nil
}

// UpdateMealPlan applies a partial update to an owned entry.
func (db *DB) UpdateMealPlan(ctx context.Context, id, userID string, req *models.UpdateMealPlanRequest) (*models.MealPlanEntry, error) {
	entry, err := scanMealPlan(db.Pool.QueryRow(ctx, `
		UPDATE meal_plans
		SET
			meal_name = COALESCE($3, meal_name),
			day_of_week = COALESCE($4, day_of_week)
		WHERE id = $1 AND user_id = $2
		RETURNING `+mealPlanColumns+`
	`, id, userID, req.MealName, req.DayOfWeek))
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plan")
	}
	return entry, nil
}

// AttachRecipe decorates an entry with a matched real recipe and flips its
// source tag. Used by reconciliation only.
func (db *DB) AttachRecipe(ctx context.Context, id string, recipe *models.Recipe) (*models.MealPlanEntry, error) {
	entry, err := scanMealPlan(db.Pool.QueryRow(ctx, `
		UPDATE meal_plans
		SET source = 'recipe', recipe_id = $2, recipe_image = $3,
			ready_in_minutes = NULLIF($4, 0), servings = NULLIF($5, 0)
		WHERE id = $1
		RETURNING `+mealPlanColumns+`
	`, id, recipe.ID, recipe.Image, recipe.ReadyInMinutes, recipe.Servings))
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plan")
	}
	return entry, nil
}

// DeleteMealPlan removes an owned entry.
func (db *DB) DeleteMealPlan(ctx context.Context, id, userID string) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM meal_plans WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return apperrors.FromPostgres(err, "meal plan")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("meal plan")
	}
	return nil
}

// ClearMealPlansByDay deletes all of a user's entries for one day in a
// single statement, reporting the deleted ids. Clearing an empty day
// succeeds with an empty result.
func (db *DB) ClearMealPlansByDay(ctx context.Context, userID, day string) (*models.BatchResult, error) {
	rows, err := db.Pool.Query(ctx, `
		DELETE FROM meal_plans WHERE user_id = $1 AND day_of_week = $2 RETURNING id
	`, userID, day)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "meal plans")
	}
	defer rows.Close()

	result := &models.BatchResult{Succeeded: []string{}, Failed: []string{}}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.FromPostgres(err, "meal plans")
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}
