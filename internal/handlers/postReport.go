package handlers

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/cmd/config"
	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/models"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

type CreateReportRequest struct {
	Location  string `json:"location" validate:"required"`
	WasteType string `json:"wasteType" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	ImageData string `json:"imageData,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

type CreateReportResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	PointsEarned int    `json:"pointsEarned"`
}

func (h *Handler) CreateReport(c *fiber.Ctx) error {
	var request CreateReportRequest
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if request.Location == "" || request.WasteType == "" || request.Amount == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Location, wasteType and amount are required",
		})
	}
	if request.ImageData == "" && request.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "An image is required",
		})
	}

	imageURL := request.ImageURL
	if request.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(request.ImageData)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid image data",
			})
		}

		imageURL, err = h.Images.Store(ctx, data, c.Get("X-Image-Content-Type", "image/jpeg"))
		if err != nil {
			logger.Log.Error("Image upload failed, report not created", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Image upload failed",
			})
		}
	}

	location := request.Location
	if h.Geocoder != nil {
		if resolved, err := h.Geocoder.Resolve(ctx, location); err == nil {
			location = resolved
		} else {
			logger.Log.Debug("Geocoding skipped", zap.Error(err))
		}
	}

	report := models.Report{
		ID:        uuid.New(),
		UserID:    currentUserID(c),
		Location:  location,
		WasteType: request.WasteType,
		Amount:    request.Amount,
		ImageURL:  imageURL,
	}

	points := config.ReportRewardPoints
	notification := fmt.Sprintf("You've earned %d points for reporting waste!", points)

	err := storage.CreateReportWithReward(ctx, report, points, "Points earned for reporting waste", notification)
	if err != nil {
		logger.Log.Error("Error creating report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating report",
		})
	}

	logger.Log.Info("Report created",
		zap.String("reportID", report.ID.String()),
		zap.String("wasteType", report.WasteType))

	return c.Status(fiber.StatusCreated).JSON(CreateReportResponse{
		ID:           report.ID.String(),
		Status:       models.ReportStatusPending,
		PointsEarned: points,
	})
}
