package models

import "errors"

// Domain errors shared across storage, workflow and handlers.
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidState        = errors.New("invalid state for requested transition")
	ErrAlreadyClaimed      = errors.New("report already claimed by another collector")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNothingToRedeem     = errors.New("nothing to redeem")
)
