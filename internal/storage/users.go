package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/models"
)

func GetUserByEmail(ctx context.Context, email string) (models.User, error) {

	var user models.User

	err := DB.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1;
	`, email).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

// CreateUser inserts the user together with its zeroed balance row so every
// user always has a counter to increment.
func CreateUser(ctx context.Context, userID uuid.UUID, email, name, passwordHash string) error {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4);
	`, userID, email, name, passwordHash)

	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reward_balances (user_id) VALUES ($1);
	`, userID)

	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
