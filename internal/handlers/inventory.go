package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// ListInventory returns all fridge items with expiry annotations
func (h *Handler) ListInventory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	items, err := h.db.ListInventory(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}

	now := time.Now()
	annotated := make([]models.InventoryItemWithStatus, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, item.WithStatus(now))
	}
	return Success(c, annotated)
}

// GetInventoryItem returns a single fridge item
func (h *Handler) GetInventoryItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	item, err := h.db.GetInventoryItem(c.Context(), c.Params("id"), userID)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, item.WithStatus(time.Now()))
}

// CreateInventoryItem adds a fridge item
func (h *Handler) CreateInventoryItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	item, err := h.db.CreateInventoryItem(c.Context(), userID, &req)
	if err != nil {
		return FromError(c, err)
	}
	return Created(c, item.WithStatus(time.Now()))
}

// UpdateInventoryItem applies a partial update to a fridge item
func (h *Handler) UpdateInventoryItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	item, err := h.db.UpdateInventoryItem(c.Context(), c.Params("id"), userID, &req)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, item.WithStatus(time.Now()))
}

// DeleteInventoryItem removes a fridge item
func (h *Handler) DeleteInventoryItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.db.DeleteInventoryItem(c.Context(), c.Params("id"), userID); err != nil {
		return FromError(c, err)
	}
	return Success(c, fiber.Map{"deleted": true})
}

// InventorySummary returns aggregate freshness counts for the dashboard
func (h *Handler) InventorySummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	items, err := h.db.ListInventory(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}

	now := time.Now()
	summary := models.InventorySummary{TotalItems: len(items)}
	for _, item := range items {
		switch models.ClassifyExpiry(models.DaysUntilExpiry(item.ExpiryDate, now)) {
		case models.ExpiryExpired:
			summary.ExpiredCount++
		case models.ExpiryExpiringSoon:
			summary.ExpiringSoonCount++
		default:
			summary.FreshCount++
		}
	}
	return Success(c, summary)
}

// ExpiringInventory returns items that are expired or expiring soon,
// soonest first
func (h *Handler) ExpiringInventory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	items, err := h.db.ListInventory(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}

	now := time.Now()
	expiring := make([]models.InventoryItemWithStatus, 0)
	for _, item := range items {
		ann := item.WithStatus(now)
		if ann.ExpiryStatus != models.ExpiryFresh {
			expiring = append(expiring, ann)
		}
	}
	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].DaysUntilExpiry < expiring[j].DaysUntilExpiry
	})
	return Success(c, expiring)
}
