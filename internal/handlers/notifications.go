package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	userID := currentUserID(c)

	notifications, err := storage.GetUnreadNotifications(ctx, userID)
	if err != nil {
		logger.Log.Error("Error getting notifications", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if len(notifications) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var response []NotificationResponse
	for _, n := range notifications {
		response = append(response, NotificationResponse{
			ID:        n.ID.String(),
			Message:   n.Message,
			Type:      n.Type,
			CreatedAt: n.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid notification id",
		})
	}

	if err = storage.MarkNotificationRead(ctx, notificationID); err != nil {
		logger.Log.Error("Error marking notification read", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
