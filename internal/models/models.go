package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. ReportStatusCompleted is reserved: the observed flow moves
// in_progress reports straight to verified.
const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in_progress"
	ReportStatusCompleted  = "completed"
	ReportStatusVerified   = "verified"
)

// Transaction kinds. Amounts are stored positive; the kind implies the sign.
const (
	TxEarnedReport  = "earned_report"
	TxEarnedCollect = "earned_collect"
	TxRedeemed      = "redeemed"
)

const (
	NotificationReward     = "reward"
	NotificationCollection = "collection"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Report struct {
	ID                 uuid.UUID     `db:"id"`
	UserID             uuid.UUID     `db:"user_id"`
	Location           string        `db:"location"`
	WasteType          string        `db:"waste_type"`
	Amount             string        `db:"amount"`
	ImageURL           string        `db:"image_url"`
	VerificationResult string        `db:"verification_result"`
	Status             string        `db:"status"`
	CollectorID        uuid.NullUUID `db:"collector_id"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

type Transaction struct {
	ID          int       `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Kind        string    `db:"kind"`
	Amount      int       `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type RewardBalance struct {
	ID     int       `db:"id"`
	UserID uuid.UUID `db:"user_id"`
	Points int       `db:"points"`
}

type CollectedWaste struct {
	ID          uuid.UUID `db:"id"`
	ReportID    uuid.UUID `db:"report_id"`
	CollectorID uuid.UUID `db:"collector_id"`
	CollectedAt time.Time `db:"collected_at"`
	Status      string    `db:"status"`
}

type Notification struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type CatalogReward struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Cost        int       `db:"cost"`
	Description string    `db:"description"`
	Available   bool      `db:"available"`
}
