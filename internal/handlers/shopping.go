package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// ListShoppingItems returns the user's shopping list
func (h *Handler) ListShoppingItems(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	items, err := h.db.ListShoppingItems(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, items)
}

// CreateShoppingItem adds an item to the shopping list
func (h *Handler) CreateShoppingItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.CreateShoppingListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	item, err := h.db.CreateShoppingItem(c.Context(), userID, &req)
	if err != nil {
		return FromError(c, err)
	}
	return Created(c, item)
}

// UpdateShoppingItem applies a partial update to a shopping-list item
func (h *Handler) UpdateShoppingItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.UpdateShoppingListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	item, err := h.db.UpdateShoppingItem(c.Context(), c.Params("id"), userID, &req)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, item)
}

// DeleteShoppingItem removes a single shopping-list item
func (h *Handler) DeleteShoppingItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.db.DeleteShoppingItem(c.Context(), c.Params("id"), userID); err != nil {
		return FromError(c, err)
	}
	return Success(c, fiber.Map{"deleted": true})
}

// ClearShoppingList removes every item on the list and reports the batch
// outcome
func (h *Handler) ClearShoppingList(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	result, err := h.db.ClearShoppingList(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, result)
}
