package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

const transactionsListCap = 10

type TransactionResponse struct {
	Kind        string    `json:"kind"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type BalanceResponse struct {
	Current      int                   `json:"current"`
	Transactions []TransactionResponse `json:"transactions"`
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	userID := currentUserID(c)

	balance, err := storage.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Error("Error getting user balance", zap.Error(err))
		return c.SendStatus(statusFromError(err))
	}

	transactions, err := storage.GetTransactions(ctx, userID, transactionsListCap)
	if err != nil {
		logger.Log.Error("Error getting user transactions", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	response := BalanceResponse{
		Current:      balance,
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for _, tx := range transactions {
		response.Transactions = append(response.Transactions, TransactionResponse{
			Kind:        tx.Kind,
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
