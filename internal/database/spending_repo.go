package database

import (
	"context"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// CreateSpendingEntry records a grocery purchase.
func (db *DB) CreateSpendingEntry(ctx context.Context, userID string, amount float64, store string, purchaseDate time.Time) (*models.SpendingEntry, error) {
	entry := &models.SpendingEntry{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO grocery_spending (user_id, amount, store, purchase_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, store, purchase_date, created_at
	`, userID, amount, store, purchaseDate).Scan(
		&entry.ID, &entry.UserID, &entry.Amount, &entry.Store,
		&entry.PurchaseDate, &entry.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "spending entry")
	}
	return entry, nil
}

// CreateWasteEntry records discarded food.
func (db *DB) CreateWasteEntry(ctx context.Context, userID string, amount float64, reason string, wasteDate time.Time) (*models.WasteEntry, error) {
	entry := &models.WasteEntry{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO food_waste (user_id, amount, reason, waste_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, reason, waste_date, created_at
	`, userID, amount, reason, wasteDate).Scan(
		&entry.ID, &entry.UserID, &entry.Amount, &entry.Reason,
		&entry.WasteDate, &entry.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "waste entry")
	}
	return entry, nil
}

// ListSpendingEntries returns a user's purchases, newest first.
func (db *DB) ListSpendingEntries(ctx context.Context, userID string) ([]*models.SpendingEntry, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, amount, store, purchase_date, created_at
		FROM grocery_spending
		WHERE user_id = $1
		ORDER BY purchase_date DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "spending entries")
	}
	defer rows.Close()

	var entries []*models.SpendingEntry
	for rows.Next() {
		entry := &models.SpendingEntry{}
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Amount, &entry.Store,
			&entry.PurchaseDate, &entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "spending entries")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ListWasteEntries returns a user's waste records, newest first.
func (db *DB) ListWasteEntries(ctx context.Context, userID string) ([]*models.WasteEntry, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, amount, reason, waste_date, created_at
		FROM food_waste
		WHERE user_id = $1
		ORDER BY waste_date DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "waste entries")
	}
	defer rows.Close()

	var entries []*models.WasteEntry
	for rows.Next() {
		entry := &models.WasteEntry{}
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Amount, &entry.Reason,
			&entry.WasteDate, &entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.FromPostgres(err, "waste entries")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
