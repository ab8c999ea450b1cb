package storage

import (
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/cmd/config"
	"github.com/sol1corejz/ecotrack/internal/logger"
)

var (
	DB                     *sql.DB
	ErrConnectionFailed    = errors.New("db connection failed")
	ErrCreatingTableFailed = errors.New("creating table failed")
)

func Init() error {
	if config.DatabaseURI == "" {
		return ErrConnectionFailed
	}

	db, err := sql.Open("pgx", config.DatabaseURI)
	if err != nil {
		logger.Log.Error("Error opening database connection", zap.Error(err))
		return ErrConnectionFailed
	}
	DB = db

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS reports (
			id UUID PRIMARY KEY NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id),
			location TEXT NOT NULL,
			waste_type VARCHAR(255) NOT NULL,
			amount VARCHAR(255) NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			verification_result TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			collector_id UUID REFERENCES users(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id),
			kind VARCHAR(30) NOT NULL,
			amount INTEGER NOT NULL CHECK (amount > 0),
			description TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS reward_balances (
			id SERIAL PRIMARY KEY NOT NULL,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			points INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS collected_wastes (
			id UUID PRIMARY KEY NOT NULL,
			report_id UUID UNIQUE NOT NULL REFERENCES reports(id),
			collector_id UUID NOT NULL REFERENCES users(id),
			collected_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(20) NOT NULL DEFAULT 'collected'
		);`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id),
			message TEXT NOT NULL,
			type VARCHAR(30) NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS reward_catalog (
			id UUID PRIMARY KEY NOT NULL,
			name VARCHAR(255) NOT NULL,
			cost INTEGER NOT NULL CHECK (cost > 0),
			description TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE
		);`,
	}

	for _, table := range tables {
		if _, err := DB.Exec(table); err != nil {
			logger.Log.Error("Error creating table", zap.Error(err))
			return ErrCreatingTableFailed
		}
	}

	return nil
}
