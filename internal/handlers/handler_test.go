package handlers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/sol1corejz/ecotrack/internal/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: models.ErrNotFound, status: fiber.StatusNotFound},
		{name: "invalid state", err: models.ErrInvalidState, status: fiber.StatusConflict},
		{name: "already claimed", err: models.ErrAlreadyClaimed, status: fiber.StatusConflict},
		{name: "insufficient balance", err: models.ErrInsufficientBalance, status: fiber.StatusPaymentRequired},
		{name: "nothing to redeem", err: models.ErrNothingToRedeem, status: fiber.StatusPaymentRequired},
		{name: "wrapped domain error", err: errors.Join(errors.New("context"), models.ErrNotFound), status: fiber.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), status: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFromError(tt.err))
		})
	}
}
