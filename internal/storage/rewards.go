package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/models"
)

// appendCredit writes the ledger entry and bumps the cached counter inside the
// caller's transaction. The ledger stays authoritative; the counter is just a
// projection kept in the same atomic unit.
func appendCredit(ctx context.Context, tx *sql.Tx, userID uuid.UUID, kind string, amount int, description string) error {

	_, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, kind, amount, description) VALUES ($1, $2, $3, $4);
	`, userID, kind, amount, description)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE reward_balances SET points = points + $1 WHERE user_id = $2;
	`, amount, userID)

	return err
}

func CreditPoints(ctx context.Context, userID uuid.UUID, kind string, amount int, description string) error {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err = appendCredit(ctx, tx, userID, kind, amount, description); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// RedeemPoints decrements the counter only when it still covers the cost at
// write time; a losing concurrent redemption sees zero rows affected and the
// whole transaction rolls back with ErrInsufficientBalance.
func RedeemPoints(ctx context.Context, userID uuid.UUID, cost int, description string) error {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE reward_balances SET points = points - $1 WHERE user_id = $2 AND points >= $1;
	`, cost, userID)
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		// Zero rows means either no balance row or a balance below cost;
		// tell them apart so callers are not left guessing.
		var points int
		scanErr := tx.QueryRowContext(ctx, `
			SELECT points FROM reward_balances WHERE user_id = $1;
		`, userID).Scan(&points)
		tx.Rollback()

		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		if scanErr != nil {
			return scanErr
		}
		return models.ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, kind, amount, description) VALUES ($1, $2, $3, $4);
	`, userID, models.TxRedeemed, cost, description)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// RedeemAllPoints zeroes a positive balance and returns the redeemed amount.
func RedeemAllPoints(ctx context.Context, userID uuid.UUID, description string) (int, error) {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	var points int
	err = tx.QueryRowContext(ctx, `
		SELECT points FROM reward_balances WHERE user_id = $1 FOR UPDATE;
	`, userID).Scan(&points)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		return 0, err
	}

	if points <= 0 {
		tx.Rollback()
		return 0, models.ErrNothingToRedeem
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE reward_balances SET points = 0 WHERE user_id = $1;
	`, userID)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, kind, amount, description) VALUES ($1, $2, $3, $4);
	`, userID, models.TxRedeemed, points, description)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return points, nil
}

func GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {

	var points int

	err := DB.QueryRowContext(ctx, `
		SELECT points FROM reward_balances WHERE user_id = $1;
	`, userID).Scan(&points)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		return 0, err
	}

	return points, nil
}

func GetTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {

	var transactions []models.Transaction

	rows, err := DB.QueryContext(ctx, `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tx models.Transaction
		err = rows.Scan(&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Description, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func GetRewardCatalog(ctx context.Context) ([]models.CatalogReward, error) {

	var catalog []models.CatalogReward

	rows, err := DB.QueryContext(ctx, `
		SELECT id, name, cost, description, available FROM reward_catalog ORDER BY cost;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reward models.CatalogReward
		err = rows.Scan(&reward.ID, &reward.Name, &reward.Cost, &reward.Description, &reward.Available)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, reward)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func GetCatalogReward(ctx context.Context, rewardID uuid.UUID) (models.CatalogReward, error) {

	var reward models.CatalogReward

	err := DB.QueryRowContext(ctx, `
		SELECT id, name, cost, description, available FROM reward_catalog WHERE id = $1;
	`, rewardID).Scan(&reward.ID, &reward.Name, &reward.Cost, &reward.Description, &reward.Available)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogReward{}, models.ErrNotFound
		}
		return models.CatalogReward{}, err
	}

	return reward, nil
}

func ListBalances(ctx context.Context) ([]models.RewardBalance, error) {

	var balances []models.RewardBalance

	rows, err := DB.QueryContext(ctx, `
		SELECT id, user_id, points FROM reward_balances;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var balance models.RewardBalance
		err = rows.Scan(&balance.ID, &balance.UserID, &balance.Points)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}

// GetAllTransactions returns the user's full ledger history, oldest first,
// for balance recomputation.
func GetAllTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {

	var transactions []models.Transaction

	rows, err := DB.QueryContext(ctx, `
		SELECT id, user_id, kind, amount, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tx models.Transaction
		err = rows.Scan(&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Description, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// RepairBalance swaps the counter to the recomputed value only if it still
// holds the value read at scan time. A concurrent credit or redeem makes the
// swap miss; the caller skips and recomputes on the next pass instead of
// overwriting a counter that already moved.
func RepairBalance(ctx context.Context, userID uuid.UUID, expected, points int) (bool, error) {

	result, err := DB.ExecContext(ctx, `
		UPDATE reward_balances SET points = $1 WHERE user_id = $2 AND points = $3;
	`, points, userID, expected)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
