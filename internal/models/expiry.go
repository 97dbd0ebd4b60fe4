package models

import (
	"math"
	"time"
)

// ExpiryStatus classifies how close an inventory item is to its expiry date.
type ExpiryStatus string

const (
	ExpiryExpired      ExpiryStatus = "expired"
	ExpiryExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryFresh        ExpiryStatus = "fresh"
)

// expiringSoonWindow is the inclusive days-remaining bound for "expiring soon".
const expiringSoonWindow = 3

// DaysUntilExpiry returns whole calendar days between now and the expiry
// date. Both are truncated to local midnight first, so an item expiring
// later today counts as 0 days remaining. Rounding absorbs the 23h and 25h
// days around DST transitions.
func DaysUntilExpiry(expiry, now time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, expiry.Location())
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(e.Sub(n).Hours() / 24))
}

// ClassifyExpiry buckets a days-remaining value.
func ClassifyExpiry(daysRemaining int) ExpiryStatus {
	switch {
	case daysRemaining < 0:
		return ExpiryExpired
	case daysRemaining <= expiringSoonWindow:
		return ExpiryExpiringSoon
	default:
		return ExpiryFresh
	}
}

// WithStatus decorates an inventory item with its expiry classification.
func (i InventoryItem) WithStatus(now time.Time) InventoryItemWithStatus {
	days := DaysUntilExpiry(i.ExpiryDate, now)
	return InventoryItemWithStatus{
		InventoryItem:   i,
		DaysUntilExpiry: days,
		ExpiryStatus:    ClassifyExpiry(days),
	}
}
