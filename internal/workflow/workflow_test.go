package workflow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sol1corejz/ecotrack/internal/models"
)

func TestCanClaim(t *testing.T) {
	collectorA := uuid.New()
	collectorB := uuid.New()

	tests := []struct {
		name       string
		report     models.Report
		collector  uuid.UUID
		alreadyOwn bool
		wantErr    error
	}{
		{
			name:      "pending report is claimable",
			report:    models.Report{Status: models.ReportStatusPending},
			collector: collectorA,
		},
		{
			name: "re-claim by the same collector is idempotent",
			report: models.Report{
				Status:      models.ReportStatusInProgress,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector:  collectorA,
			alreadyOwn: true,
		},
		{
			name: "claim of an in_progress report by another collector is rejected",
			report: models.Report{
				Status:      models.ReportStatusInProgress,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector: collectorB,
			wantErr:   models.ErrAlreadyClaimed,
		},
		{
			name: "verified report cannot be claimed",
			report: models.Report{
				Status:      models.ReportStatusVerified,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector: collectorB,
			wantErr:   models.ErrInvalidState,
		},
		{
			name:      "completed report cannot be claimed",
			report:    models.Report{Status: models.ReportStatusCompleted},
			collector: collectorA,
			wantErr:   models.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alreadyOwn, err := CanClaim(tt.report, tt.collector)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.alreadyOwn, alreadyOwn)
		})
	}
}

func TestCanVerify(t *testing.T) {
	collectorA := uuid.New()
	collectorB := uuid.New()

	tests := []struct {
		name      string
		report    models.Report
		collector uuid.UUID
		wantErr   error
	}{
		{
			name: "assigned collector on in_progress report",
			report: models.Report{
				Status:      models.ReportStatusInProgress,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector: collectorA,
		},
		{
			name: "non-assigned collector is rejected",
			report: models.Report{
				Status:      models.ReportStatusInProgress,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector: collectorB,
			wantErr:   models.ErrInvalidState,
		},
		{
			name:      "pending report cannot be verified",
			report:    models.Report{Status: models.ReportStatusPending},
			collector: collectorA,
			wantErr:   models.ErrInvalidState,
		},
		{
			name: "already verified report cannot be verified again",
			report: models.Report{
				Status:      models.ReportStatusVerified,
				CollectorID: uuid.NullUUID{UUID: collectorA, Valid: true},
			},
			collector: collectorA,
			wantErr:   models.ErrInvalidState,
		},
		{
			name:      "missing collector fails closed",
			report:    models.Report{Status: models.ReportStatusInProgress},
			collector: collectorA,
			wantErr:   models.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanVerify(tt.report, tt.collector)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCollectionAwardRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		award := CollectionAward(10, 59)
		assert.GreaterOrEqual(t, award, 10)
		assert.LessOrEqual(t, award, 59)
	}
}

func TestCollectionAwardDegenerateRange(t *testing.T) {
	assert.Equal(t, 10, CollectionAward(10, 10))
	assert.Equal(t, 10, CollectionAward(10, 5))
}
