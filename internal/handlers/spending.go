package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

// WeeklySpending returns spending and waste totals grouped into
// Monday-start weeks, most recent first
func (h *Handler) WeeklySpending(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	spending, err := h.db.ListSpendingEntries(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}
	waste, err := h.db.ListWasteEntries(c.Context(), userID)
	if err != nil {
		return FromError(c, err)
	}

	flatSpending := make([]models.SpendingEntry, 0, len(spending))
	for _, e := range spending {
		flatSpending = append(flatSpending, *e)
	}
	flatWaste := make([]models.WasteEntry, 0, len(waste))
	for _, e := range waste {
		flatWaste = append(flatWaste, *e)
	}

	return Success(c, services.GroupSpendingByWeek(flatSpending, flatWaste))
}

// CreateSpendingEntry records a grocery purchase
func (h *Handler) CreateSpendingEntry(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.CreateSpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	date, err := models.ParseEntryDate(req.PurchaseDate, time.Now())
	if err != nil {
		return FromError(c, err)
	}

	entry, err := h.db.CreateSpendingEntry(c.Context(), userID, req.Amount, req.Store, date)
	if err != nil {
		return FromError(c, err)
	}
	return Created(c, entry)
}

// CreateWasteEntry records discarded food valued in currency
func (h *Handler) CreateWasteEntry(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return FromError(c, err)
	}

	var req models.CreateWasteRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return FromError(c, err)
	}

	date, err := models.ParseEntryDate(req.WasteDate, time.Now())
	if err != nil {
		return FromError(c, err)
	}

	entry, err := h.db.CreateWasteEntry(c.Context(), userID, req.Amount, req.Reason, date)
	if err != nil {
		return FromError(c, err)
	}
	return Created(c, entry)
}
