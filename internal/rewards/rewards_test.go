package rewards

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sol1corejz/ecotrack/internal/models"
)

func TestAvailable(t *testing.T) {
	catalog := []models.CatalogReward{
		{ID: uuid.New(), Name: "Tote bag", Cost: 25, Available: true},
		{ID: uuid.New(), Name: "Tree planting", Cost: 50, Available: true},
		{ID: uuid.New(), Name: "Retired item", Cost: 5, Available: false},
		{ID: uuid.New(), Name: "Broken item", Cost: 0, Available: true},
	}

	summary, affordable := Available(40, catalog)

	assert.Equal(t, 40, summary.Points)
	assert.Len(t, affordable, 1)
	assert.Equal(t, "Tote bag", affordable[0].Name)
}

func TestAvailableEmptyCatalog(t *testing.T) {
	summary, affordable := Available(100, nil)

	assert.Equal(t, 100, summary.Points)
	assert.Empty(t, affordable)
}

func TestCanRedeem(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		cost    int
		wantErr error
	}{
		{name: "insufficient balance", balance: 40, cost: 50, wantErr: models.ErrInsufficientBalance},
		{name: "exact balance", balance: 50, cost: 50, wantErr: nil},
		{name: "covered cost", balance: 40, cost: 25, wantErr: nil},
		{name: "non-positive cost", balance: 40, cost: 0, wantErr: models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanRedeem(tt.balance, tt.cost)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
