package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/geocode"
	"github.com/sol1corejz/ecotrack/internal/imagestore"
	"github.com/sol1corejz/ecotrack/internal/models"
	"github.com/sol1corejz/ecotrack/internal/verification"
)

const requestTimeout = 10 * time.Second

// Handler carries the external collaborators. They are constructed once in
// main and injected here; no package globals.
type Handler struct {
	Classifier *verification.Client
	Policy     verification.Policy
	Images     *imagestore.Client
	Geocoder   *geocode.Client
}

func New(classifier *verification.Client, policy verification.Policy, images *imagestore.Client, geocoder *geocode.Client) *Handler {
	return &Handler{
		Classifier: classifier,
		Policy:     policy,
		Images:     images,
		Geocoder:   geocoder,
	}
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	userID, _ := c.Locals("userID").(uuid.UUID)
	return userID
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidState), errors.Is(err, models.ErrAlreadyClaimed):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInsufficientBalance), errors.Is(err, models.ErrNothingToRedeem):
		return fiber.StatusPaymentRequired
	default:
		return fiber.StatusInternalServerError
	}
}
