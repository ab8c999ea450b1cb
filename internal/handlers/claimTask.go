package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/models"
	"github.com/sol1corejz/ecotrack/internal/storage"
	"github.com/sol1corejz/ecotrack/internal/workflow"
)

func (h *Handler) ClaimReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report id",
		})
	}

	collectorID := currentUserID(c)

	report, err := storage.GetReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Report not found",
			})
		}
		logger.Log.Error("Error getting report", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	alreadyOwn, err := workflow.CanClaim(report, collectorID)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if alreadyOwn {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": models.ReportStatusInProgress,
		})
	}

	claimed, err := storage.ClaimReport(ctx, reportID, collectorID)
	if err != nil {
		logger.Log.Error("Error claiming report", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	// The CAS lost: someone else got there between the read and the write.
	if !claimed {
		report, err = storage.GetReportByID(ctx, reportID)
		if err != nil {
			logger.Log.Error("Error re-reading report after lost claim", zap.Error(err))
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		alreadyOwn, err = workflow.CanClaim(report, collectorID)
		if err != nil {
			return c.Status(statusFromError(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if !alreadyOwn {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": models.ErrAlreadyClaimed.Error(),
			})
		}
	}

	logger.Log.Info("Report claimed",
		zap.String("reportID", reportID.String()),
		zap.String("collectorID", collectorID.String()))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": models.ReportStatusInProgress,
	})
}
