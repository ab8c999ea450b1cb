package storage

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol1corejz/ecotrack/internal/models"
)

func newMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	DB = db
	return mock
}

func TestRedeemPointsAppendsTransaction(t *testing.T) {
	mock := newMock(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_balances SET points = points - $1 WHERE user_id = $2 AND points >= $1;`)).
		WithArgs(25, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions (user_id, kind, amount, description) VALUES ($1, $2, $3, $4);`)).
		WithArgs(userID, models.TxRedeemed, 25, "Redeemed Tote bag").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := RedeemPoints(context.Background(), userID, 25, "Redeemed Tote bag")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemPointsInsufficientBalance(t *testing.T) {
	mock := newMock(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_balances SET points = points - $1 WHERE user_id = $2 AND points >= $1;`)).
		WithArgs(50, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT points FROM reward_balances WHERE user_id = $1;`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(40))
	mock.ExpectRollback()

	err := RedeemPoints(context.Background(), userID, 50, "Redeemed Tree planting")
	assert.ErrorIs(t, err, models.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemPointsMissingBalanceRow(t *testing.T) {
	mock := newMock(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_balances SET points = points - $1 WHERE user_id = $2 AND points >= $1;`)).
		WithArgs(25, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT points FROM reward_balances WHERE user_id = $1;`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"points"}))
	mock.ExpectRollback()

	err := RedeemPoints(context.Background(), userID, 25, "Redeemed Tote bag")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairBalance(t *testing.T) {
	mock := newMock(t)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_balances SET points = $1 WHERE user_id = $2 AND points = $3;`)).
		WithArgs(15, userID, 40).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repaired, err := RepairBalance(context.Background(), userID, 40, 15)
	require.NoError(t, err)
	assert.True(t, repaired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairBalanceSkipsMovedCounter(t *testing.T) {
	mock := newMock(t)
	userID := uuid.New()

	// The counter changed between the scan and the swap; zero rows match and
	// nothing is overwritten.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_balances SET points = $1 WHERE user_id = $2 AND points = $3;`)).
		WithArgs(15, userID, 40).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repaired, err := RepairBalance(context.Background(), userID, 40, 15)
	require.NoError(t, err)
	assert.False(t, repaired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
