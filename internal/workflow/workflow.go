// Package workflow holds the pure transition rules for waste-collection
// tasks. Persistence-side races are resolved by the storage CAS updates;
// these rules decide what a request is allowed to attempt at all.
package workflow

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/models"
)

// CanClaim reports whether the collector may take the report. The second
// return value signals an idempotent re-claim: the same collector already
// holds the task and the request is a no-op success.
func CanClaim(report models.Report, collectorID uuid.UUID) (alreadyOwn bool, err error) {
	switch report.Status {
	case models.ReportStatusPending:
		return false, nil
	case models.ReportStatusInProgress:
		if report.CollectorID.Valid && report.CollectorID.UUID == collectorID {
			return true, nil
		}
		return false, models.ErrAlreadyClaimed
	default:
		return false, models.ErrInvalidState
	}
}

// CanVerify allows verification only for the assigned collector on an
// in_progress report. Anything else fails closed.
func CanVerify(report models.Report, collectorID uuid.UUID) error {
	if report.Status != models.ReportStatusInProgress {
		return models.ErrInvalidState
	}
	if !report.CollectorID.Valid || report.CollectorID.UUID != collectorID {
		return models.ErrInvalidState
	}
	return nil
}

// CollectionAward picks the collector's reward uniformly from [min, max].
func CollectionAward(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}
