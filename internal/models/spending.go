package models

import (
	"strings"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
)

// SpendingEntry records a grocery purchase.
type SpendingEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Amount       float64   `json:"amount"`
	Store        string    `json:"store"`
	PurchaseDate time.Time `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// WasteEntry records food thrown away, valued in currency.
type WasteEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	WasteDate time.Time `json:"waste_date"`
	CreatedAt time.Time `json:"created_at"`
}

// WeeklySpending is one aggregated week of spending and waste.
type WeeklySpending struct {
	Week  string  `json:"week"`
	Spent float64 `json:"spent"`
	Waste float64 `json:"waste"`
}

// CreateSpendingRequest is the request body for recording a purchase.
type CreateSpendingRequest struct {
	Amount       float64 `json:"amount"`
	Store        string  `json:"store"`
	PurchaseDate string  `json:"purchase_date"` // YYYY-MM-DD, defaults to today
}

// CreateWasteRequest is the request body for recording waste.
type CreateWasteRequest struct {
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
	WasteDate string  `json:"waste_date"` // YYYY-MM-DD, defaults to today
}

func (r *CreateSpendingRequest) Validate() error {
	if r.Amount <= 0 {
		return apperrors.NewValidation("amount must be positive")
	}
	if strings.TrimSpace(r.Store) == "" {
		return apperrors.NewValidation("store is required")
	}
	return nil
}

func (r *CreateWasteRequest) Validate() error {
	if r.Amount <= 0 {
		return apperrors.NewValidation("amount must be positive")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return apperrors.NewValidation("reason is required")
	}
	return nil
}

// ParseEntryDate parses a YYYY-MM-DD date, defaulting to now when empty.
func ParseEntryDate(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("date must be in YYYY-MM-DD format")
	}
	return t, nil
}
