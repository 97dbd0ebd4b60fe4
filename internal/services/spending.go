package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// GroupSpendingByWeek buckets purchases and waste into Monday-start weeks
// and returns them most recent first. Each week is labeled by its date
// range, e.g. "Apr 1–Apr 7", and amounts are rounded to two decimals.
func GroupSpendingByWeek(spending []models.SpendingEntry, waste []models.WasteEntry) []models.WeeklySpending {
	type bucket struct {
		start time.Time
		spent float64
		waste float64
	}
	buckets := make(map[string]*bucket)

	get := func(t time.Time) *bucket {
		start := weekStart(t)
		key := start.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: start}
			buckets[key] = b
		}
		return b
	}

	for _, e := range spending {
		get(e.PurchaseDate).spent += e.Amount
	}
	for _, e := range waste {
		get(e.WasteDate).waste += e.Amount
	}

	weeks := make([]models.WeeklySpending, 0, len(buckets))
	starts := make([]time.Time, 0, len(buckets))
	for _, b := range buckets {
		starts = append(starts, b.start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].After(starts[j]) })

	for _, start := range starts {
		b := buckets[start.Format("2006-01-02")]
		weeks = append(weeks, models.WeeklySpending{
			Week:  weekLabel(b.start),
			Spent: round2(b.spent),
			Waste: round2(b.waste),
		})
	}
	return weeks
}

// weekStart truncates t to the Monday of its week at midnight UTC.
func weekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset)
}

func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s–%s", start.Format("Jan 2"), end.Format("Jan 2"))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
