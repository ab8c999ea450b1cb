package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/models"
	"github.com/sol1corejz/ecotrack/internal/rewards"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

type CatalogRewardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description,omitempty"`
}

type RewardsResponse struct {
	Points  int                     `json:"points"`
	Rewards []CatalogRewardResponse `json:"rewards"`
}

func (h *Handler) GetRewards(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	userID := currentUserID(c)

	balance, err := storage.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Error("Error getting user balance", zap.Error(err))
		return c.SendStatus(statusFromError(err))
	}

	catalog, err := storage.GetRewardCatalog(ctx)
	if err != nil {
		logger.Log.Error("Error getting reward catalog", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	summary, affordable := rewards.Available(balance, catalog)

	response := RewardsResponse{
		Points:  summary.Points,
		Rewards: make([]CatalogRewardResponse, 0, len(affordable)),
	}
	for _, reward := range affordable {
		response.Rewards = append(response.Rewards, CatalogRewardResponse{
			ID:          reward.ID.String(),
			Name:        reward.Name,
			Cost:        reward.Cost,
			Description: reward.Description,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

type RedeemRequest struct {
	RewardID string `json:"rewardId,omitempty"`
	All      bool   `json:"all,omitempty"`
}

func (h *Handler) Redeem(c *fiber.Ctx) error {
	var request RedeemRequest
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	userID := currentUserID(c)

	if request.All {
		redeemed, err := storage.RedeemAllPoints(ctx, userID, "Redeemed all points")
		if err != nil {
			logger.Log.Warn("Redeem all rejected", zap.Error(err))
			return c.Status(statusFromError(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err = storage.CreateNotification(ctx, userID,
			fmt.Sprintf("You've redeemed all your points (%d)!", redeemed), models.NotificationReward); err != nil {
			logger.Log.Error("Error creating redemption notification", zap.Error(err))
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"redeemed": redeemed,
		})
	}

	rewardID, err := uuid.Parse(request.RewardID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reward id",
		})
	}

	reward, err := storage.GetCatalogReward(ctx, rewardID)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "Reward not found",
		})
	}
	if !reward.Available {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reward not available",
		})
	}

	balance, err := storage.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Error("Error getting user balance", zap.Error(err))
		return c.SendStatus(statusFromError(err))
	}

	if err = rewards.CanRedeem(balance, reward.Cost); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err = storage.RedeemPoints(ctx, userID, reward.Cost, "Redeemed "+reward.Name); err != nil {
		logger.Log.Warn("Redemption rejected", zap.Error(err))
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err = storage.CreateNotification(ctx, userID,
		fmt.Sprintf("You've redeemed %s for %d points!", reward.Name, reward.Cost), models.NotificationReward); err != nil {
		logger.Log.Error("Error creating redemption notification", zap.Error(err))
	}

	logger.Log.Info("Reward redeemed",
		zap.String("userID", userID.String()),
		zap.String("reward", reward.Name),
		zap.Int("cost", reward.Cost))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"redeemed": reward.Cost,
	})
}
