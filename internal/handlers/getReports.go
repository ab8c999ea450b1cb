package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

const reportsListCap = 50

type ReportResponse struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	WasteType   string    `json:"wasteType"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	CollectorID string    `json:"collectorId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *Handler) GetReports(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reports, err := storage.GetRecentReports(ctx, reportsListCap)
	if err != nil {
		logger.Log.Error("Error getting reports", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if len(reports) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var response []ReportResponse
	for _, report := range reports {
		item := ReportResponse{
			ID:        report.ID.String(),
			Location:  report.Location,
			WasteType: report.WasteType,
			Amount:    report.Amount,
			Status:    report.Status,
			CreatedAt: report.CreatedAt,
		}
		if report.CollectorID.Valid {
			item.CollectorID = report.CollectorID.UUID.String()
		}
		response = append(response, item)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
