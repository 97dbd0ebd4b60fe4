package database

import (
	"context"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// ListShoppingItems returns a user's shopping list, newest first.
func (db *DB) ListShoppingItems(ctx context.Context, userID string) ([]*models.ShoppingListItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, item_name, quantity, unit, category, created_at
		FROM shopping_list
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "shopping list")
	}
	defer rows.Close()

	var items []*models.ShoppingListItem
	for rows.Next() {
		item := &models.ShoppingListItem{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
			&item.Unit, &item.Category, &item.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "shopping list")
		}
		items = append(items, item)
	}

	return items, nil
}

// CreateShoppingItem adds an item to the list.
func (db *DB) CreateShoppingItem(ctx context.Context, userID string, req *models.CreateShoppingListItemRequest) (*models.ShoppingListItem, error) {
	item := &models.ShoppingListItem{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO shopping_list (user_id, item_name, quantity, unit, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, item_name, quantity, unit, category, created_at
	`, userID, req.ItemName, req.Quantity, req.NormalizedUnit(), req.Category).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
		&item.Unit, &item.Category, &item.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "shopping list item")
	}
	return item, nil
}

// UpdateShoppingItem applies a partial update to an owned item.
func (db *DB) UpdateShoppingItem(ctx context.Context, id, userID string, req *models.UpdateShoppingListItemRequest) (*models.ShoppingListItem, error) {
	item := &models.ShoppingListItem{}
	err := db.Pool.QueryRow(ctx, `
		UPDATE shopping_list
		SET
			item_name = COALESCE($3, item_name),
			quantity = COALESCE($4, quantity),
			unit = COALESCE($5, unit),
			category = COALESCE($6, category)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, item_name, quantity, unit, category, created_at
	`, id, userID, req.ItemName, req.Quantity, req.Unit, req.Category).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
		&item.Unit, &item.Category, &item.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "shopping list item")
	}
	return item, nil
}

// DeleteShoppingItem removes an owned item.
func (db *DB) DeleteShoppingItem(ctx context.Context, id, userID string) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM shopping_list WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return apperrors.FromPostgres(err, "shopping list item")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("shopping list item")
	}
	return nil
}

// ClearShoppingList deletes every item on the user's list in one statement
// and reports the deleted ids as a batch result.
func (db *DB) ClearShoppingList(ctx context.Context, userID string) (*models.BatchResult, error) {
	rows, err := db.Pool.Query(ctx, `
		DELETE FROM shopping_list WHERE user_id = $1 RETURNING id
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "shopping list")
	}
	defer rows.Close()

	result := &models.BatchResult{Succeeded: []string{}, Failed: []string{}}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.FromPostgres(err, "shopping list")
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}
