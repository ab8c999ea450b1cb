// Package rewards holds the redemption rules and catalog filtering that sit
// between the HTTP surface and the conditional updates in storage.
package rewards

import (
	"github.com/sol1corejz/ecotrack/internal/models"
)

// PointsSummary is the user's raw balance, returned alongside the catalog
// instead of being smuggled into it as a pseudo-reward.
type PointsSummary struct {
	Points int
}

// Available returns the summary plus the catalog entries the balance covers.
// Unavailable entries and entries with a non-positive cost never qualify.
func Available(balance int, catalog []models.CatalogReward) (PointsSummary, []models.CatalogReward) {

	affordable := make([]models.CatalogReward, 0, len(catalog))
	for _, reward := range catalog {
		if !reward.Available || reward.Cost <= 0 {
			continue
		}
		if reward.Cost <= balance {
			affordable = append(affordable, reward)
		}
	}

	return PointsSummary{Points: balance}, affordable
}

// CanRedeem is the fast-fail precheck; the storage-level conditional decrement
// remains the authoritative guard under concurrency.
func CanRedeem(balance, cost int) error {
	if cost <= 0 {
		return models.ErrNotFound
	}
	if balance < cost {
		return models.ErrInsufficientBalance
	}
	return nil
}
