package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("Vegetables"), "only the fixed set is accepted")
	assert.False(t, IsValidCategory("dairy"), "category names are case sensitive")
	assert.False(t, IsValidCategory(""))
}

func TestCreateInventoryItemRequestValidate(t *testing.T) {
	ok := CreateInventoryItemRequest{ItemName: "Milk", Quantity: 1, ExpiryDate: "2025-05-01", Category: "Dairy"}
	assert.NoError(t, ok.Validate())

	badCategory := CreateInventoryItemRequest{ItemName: "Milk", Quantity: 1, ExpiryDate: "2025-05-01", Category: "Vegetables"}
	err := badCategory.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Produce")

	negative := CreateInventoryItemRequest{ItemName: "Milk", Quantity: -1, ExpiryDate: "2025-05-01", Category: "Dairy"}
	assert.Error(t, negative.Validate())

	badDate := CreateInventoryItemRequest{ItemName: "Milk", Quantity: 1, ExpiryDate: "01/05/2025", Category: "Dairy"}
	assert.Error(t, badDate.Validate())
}

func TestUpdateInventoryItemRequestValidateCategory(t *testing.T) {
	good := "Frozen"
	assert.NoError(t, (&UpdateInventoryItemRequest{Category: &good}).Validate())

	bad := "Snacks"
	assert.Error(t, (&UpdateInventoryItemRequest{Category: &bad}).Validate())
}
