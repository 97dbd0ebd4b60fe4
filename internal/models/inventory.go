package models

import (
	"strings"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
)

// Categories is the fixed set of food categories known to the UI.
var Categories = []string{
	"Dairy", "Meat", "Produce", "Grains", "Frozen", "Spices", "Fruits", "Other",
}

// IsValidCategory reports whether category is one of the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// InventoryItem is a tracked fridge/pantry item.
type InventoryItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ItemName   string    `json:"item_name"`
	Quantity   float64   `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InventoryItemWithStatus decorates an item with expiry classification for
// list and dashboard views.
type InventoryItemWithStatus struct {
	InventoryItem
	DaysUntilExpiry int          `json:"days_until_expiry"`
	ExpiryStatus    ExpiryStatus `json:"expiry_status"`
}

// InventorySummary provides aggregate stats for the dashboard.
type InventorySummary struct {
	TotalItems        int `json:"total_items"`
	ExpiredCount      int `json:"expired_count"`
	ExpiringSoonCount int `json:"expiring_soon_count"`
	FreshCount        int `json:"fresh_count"`
}

// CreateInventoryItemRequest is the request body for adding an item.
type CreateInventoryItemRequest struct {
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	ExpiryDate string  `json:"expiry_date"` // YYYY-MM-DD
	Category   string  `json:"category"`
}

// UpdateInventoryItemRequest is the request body for partial updates.
type UpdateInventoryItemRequest struct {
	ItemName   *string  `json:"item_name,omitempty"`
	Quantity   *float64 `json:"quantity,omitempty"`
	ExpiryDate *string  `json:"expiry_date,omitempty"`
	Category   *string  `json:"category,omitempty"`
}

const expiryDateLayout = "2006-01-02"

// Validate checks required-field presence and ranges.
func (r *CreateInventoryItemRequest) Validate() error {
	if len(strings.TrimSpace(r.ItemName)) < 2 {
		return apperrors.NewValidation("item name must be at least 2 characters")
	}
	if r.Quantity < 0 {
		return apperrors.NewValidation("quantity cannot be negative")
	}
	if !IsValidCategory(r.Category) {
		return apperrors.NewValidationf("category must be one of: %s", strings.Join(Categories, ", "))
	}
	if _, err := r.ParsedExpiryDate(); err != nil {
		return err
	}
	return nil
}

// ParsedExpiryDate parses the YYYY-MM-DD expiry date.
func (r *CreateInventoryItemRequest) ParsedExpiryDate() (time.Time, error) {
	if strings.TrimSpace(r.ExpiryDate) == "" {
		return time.Time{}, apperrors.NewValidation("expiry date is required")
	}
	t, err := time.Parse(expiryDateLayout, r.ExpiryDate)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("expiry date must be in YYYY-MM-DD format")
	}
	return t, nil
}

// Validate checks any provided fields.
func (r *UpdateInventoryItemRequest) Validate() error {
	if r.ItemName != nil && len(strings.TrimSpace(*r.ItemName)) < 2 {
		return apperrors.NewValidation("item name must be at least 2 characters")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return apperrors.NewValidation("quantity cannot be negative")
	}
	if r.Category != nil && !IsValidCategory(*r.Category) {
		return apperrors.NewValidationf("category must be one of: %s", strings.Join(Categories, ", "))
	}
	if r.ExpiryDate != nil {
		if _, err := time.Parse(expiryDateLayout, *r.ExpiryDate); err != nil {
			return apperrors.NewValidation("expiry date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

// ParsedExpiryDate parses the optional expiry date update.
func (r *UpdateInventoryItemRequest) ParsedExpiryDate() *time.Time {
	if r.ExpiryDate == nil {
		return nil
	}
	t, err := time.Parse(expiryDateLayout, *r.ExpiryDate)
	if err != nil {
		return nil
	}
	return &t
}
