package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGroupSpendingByWeek(t *testing.T) {
	spending := []models.SpendingEntry{
		{Amount: 25.10, PurchaseDate: day(2025, time.April, 1)}, // Tuesday
		{Amount: 10.15, PurchaseDate: day(2025, time.April, 4)}, // same week
		{Amount: 50.00, PurchaseDate: day(2025, time.April, 9)}, // next week
	}
	waste := []models.WasteEntry{
		{Amount: 5.557, WasteDate: day(2025, time.April, 2)},
	}

	weeks := GroupSpendingByWeek(spending, waste)
	require.Len(t, weeks, 2)

	// Most recent week first. Apr 9 2025 falls in the Monday Apr 7 week.
	assert.Equal(t, "Apr 7–Apr 13", weeks[0].Week)
	assert.Equal(t, 50.00, weeks[0].Spent)
	assert.Equal(t, 0.0, weeks[0].Waste)

	assert.Equal(t, "Mar 31–Apr 6", weeks[1].Week)
	assert.Equal(t, 35.25, weeks[1].Spent)
	assert.Equal(t, 5.56, weeks[1].Waste, "amounts are rounded to two decimals")
}

func TestGroupSpendingByWeekSundayBelongsToMondayWeek(t *testing.T) {
	weeks := GroupSpendingByWeek([]models.SpendingEntry{
		{Amount: 10, PurchaseDate: day(2025, time.April, 7)}, // Monday
		{Amount: 20, PurchaseDate: day(2025, time.April, 13)}, // Sunday, same week
	}, nil)

	require.Len(t, weeks, 1)
	assert.Equal(t, "Apr 7–Apr 13", weeks[0].Week)
	assert.Equal(t, 30.0, weeks[0].Spent)
}

func TestGroupSpendingByWeekEmpty(t *testing.T) {
	assert.Empty(t, GroupSpendingByWeek(nil, nil))
}

func TestGroupSpendingByWeekWasteOnlyWeek(t *testing.T) {
	weeks := GroupSpendingByWeek(nil, []models.WasteEntry{
		{Amount: 3.20, WasteDate: day(2025, time.May, 6)},
	})

	require.Len(t, weeks, 1)
	assert.Equal(t, 0.0, weeks[0].Spent)
	assert.Equal(t, 3.20, weeks[0].Waste)
}
