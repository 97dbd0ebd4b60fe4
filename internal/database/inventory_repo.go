package database

import (
	"context"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// ListInventory returns all inventory items for a user, newest first.
func (db *DB) ListInventory(ctx context.Context, userID string) ([]*models.InventoryItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, item_name, quantity, expiry_date, category, created_at, updated_at
		FROM inventory
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "inventory")
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
			&item.ExpiryDate, &item.Category, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "inventory")
		}
		items = append(items, item)
	}

	return items, nil
}

// ListInventoryNames returns just the item names for a user's fridge,
// used to build LLM prompts.
func (db *DB) ListInventoryNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT item_name FROM inventory WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "inventory")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.FromPostgres(err, "inventory")
		}
		names = append(names, name)
	}

	return names, nil
}

// GetInventoryItem retrieves a single item scoped to its owner.
func (db *DB) GetInventoryItem(ctx context.Context, id, userID string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, item_name, quantity, expiry_date, category, created_at, updated_at
		FROM inventory
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
		&item.ExpiryDate, &item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "inventory item")
	}
	return item, nil
}

// CreateInventoryItem adds an item; the server assigns id and timestamps.
func (db *DB) CreateInventoryItem(ctx context.Context, userID string, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	expiry, err := req.ParsedExpiryDate()
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{}
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO inventory (user_id, item_name, quantity, expiry_date, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, item_name, quantity, expiry_date, category, created_at, updated_at
	`, userID, req.ItemName, req.Quantity, expiry, req.Category).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
		&item.ExpiryDate, &item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "inventory item")
	}
	return item, nil
}

// UpdateInventoryItem applies a partial update to an owned item.
func (db *DB) UpdateInventoryItem(ctx context.Context, id, userID string, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := db.Pool.QueryRow(ctx, `
		UPDATE inventory
		SET
			item_name = COALESCE($3, item_name),
			quantity = COALESCE($4, quantity),
			expiry_date = COALESCE($5, expiry_date),
			category = COALESCE($6, category),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, item_name, quantity, expiry_date, category, created_at, updated_at
	`, id, userID, req.ItemName, req.Quantity, req.ParsedExpiryDate(), req.Category).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Quantity,
		&item.ExpiryDate, &item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "inventory item")
	}
	return item, nil
}

// DeleteInventoryItem removes an owned item.
func (db *DB) DeleteInventoryItem(ctx context.Context, id, userID string) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM inventory WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return apperrors.FromPostgres(err, "inventory item")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("inventory item")
	}
	return nil
}
