package models

import (
	"strings"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
)

// ShoppingListItem is one entry on a user's shopping list. Checked state is
// UI-local and intentionally not persisted.
type ShoppingListItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateShoppingListItemRequest is the request body for adding an item.
type CreateShoppingListItemRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// UpdateShoppingListItemRequest is the request body for partial updates.
type UpdateShoppingListItemRequest struct {
	ItemName *string `json:"item_name,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Validate checks required fields and ranges.
func (r *CreateShoppingListItemRequest) Validate() error {
	if len(strings.TrimSpace(r.ItemName)) < 2 {
		return apperrors.NewValidation("item name must be at least 2 characters")
	}
	if r.Quantity < 1 {
		return apperrors.NewValidation("quantity must be at least 1")
	}
	if strings.TrimSpace(r.Category) == "" {
		return apperrors.NewValidation("category is required")
	}
	return nil
}

// NormalizedUnit returns the unit, defaulting to "none".
func (r *CreateShoppingListItemRequest) NormalizedUnit() string {
	if strings.TrimSpace(r.Unit) == "" {
		return "none"
	}
	return r.Unit
}

// Validate checks any provided fields.
func (r *UpdateShoppingListItemRequest) Validate() error {
	if r.ItemName != nil && len(strings.TrimSpace(*r.ItemName)) < 2 {
		return apperrors.NewValidation("item name must be at least 2 characters")
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return apperrors.NewValidation("quantity must be at least 1")
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return apperrors.NewValidation("category cannot be empty")
	}
	return nil
}
