package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/cmd/config"
	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/models"
	"github.com/sol1corejz/ecotrack/internal/storage"
	"github.com/sol1corejz/ecotrack/internal/verification"
	"github.com/sol1corejz/ecotrack/internal/workflow"
)

type VerifyRequest struct {
	ImageData string `json:"imageData,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

type VerifyResponse struct {
	Verified bool                 `json:"verified"`
	Reward   int                  `json:"reward,omitempty"`
	Result   verification.Outcome `json:"result"`
}

type verificationRecord struct {
	verification.Outcome
	Labels []string `json:"labels,omitempty"`
}

func (h *Handler) VerifyReport(c *fiber.Ctx) error {
	var request VerifyRequest
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report id",
		})
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if request.ImageData == "" && request.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A verification image is required",
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

	if err = workflow.CanVerify(report, collectorID); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
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
			logger.Log.Error("Verification image upload failed", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Image upload failed",
			})
		}
	}

	classification := h.Classifier.Classify(ctx, imageURL)
	outcome := h.Policy.Evaluate(classification, report.WasteType, report.Amount)

	record := verificationRecord{Outcome: outcome}
	for _, candidate := range classification.Candidates {
		record.Labels = append(record.Labels, candidate.Label)
	}
	resultJSON, err := json.Marshal(record)
	if err != nil {
		logger.Log.Error("Error encoding verification result", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if !outcome.Verified {
		if err = storage.RecordVerificationAttempt(ctx, reportID, collectorID, string(resultJSON)); err != nil {
			if errors.Is(err, models.ErrInvalidState) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			logger.Log.Error("Error recording verification attempt", zap.Error(err))
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		logger.Log.Info("Verification failed",
			zap.String("reportID", reportID.String()),
			zap.String("kind", classification.Kind),
			zap.Float64("confidence", outcome.Confidence))

		return c.Status(fiber.StatusOK).JSON(VerifyResponse{
			Verified: false,
			Result:   outcome,
		})
	}

	award := workflow.CollectionAward(config.CollectRewardMin, config.CollectRewardMax)

	if err = storage.CompleteVerification(ctx, reportID, collectorID, string(resultJSON), award); err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Log.Error("Error completing verification", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	logger.Log.Info("Report verified",
		zap.String("reportID", reportID.String()),
		zap.String("collectorID", collectorID.String()),
		zap.Int("award", award))

	return c.Status(fiber.StatusOK).JSON(VerifyResponse{
		Verified: true,
		Reward:   award,
		Result:   outcome,
	})
}
