package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

type CollectedWasteResponse struct {
	ID          string    `json:"id"`
	ReportID    string    `json:"reportId"`
	CollectedAt time.Time `json:"collectedAt"`
	Status      string    `json:"status"`
}

func (h *Handler) GetCollectedWastes(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	collectorID := currentUserID(c)

	collected, err := storage.GetCollectedByCollector(ctx, collectorID)
	if err != nil {
		logger.Log.Error("Error getting collected wastes", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if len(collected) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var response []CollectedWasteResponse
	for _, cw := range collected {
		response = append(response, CollectedWasteResponse{
			ID:          cw.ID.String(),
			ReportID:    cw.ReportID.String(),
			CollectedAt: cw.CollectedAt,
			Status:      cw.Status,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
