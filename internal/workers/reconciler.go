package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	_ "github.com/lib/pq"

	"github.com/sol1corejz/ecotrack/cmd/config"
	"github.com/sol1corejz/ecotrack/internal/ledger"
	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/storage"
)

// InitReconciler starts the background job that keeps the cached point
// counters consistent with the transaction ledger. The ledger is the source
// of truth; a drifted counter is swapped to the recomputed balance unless it
// moved since the scan, in which case the next pass picks it up.
func InitReconciler() {
	go startWorker()

	logger.Log.Info("Balance reconciler worker started")
}

func startWorker() {
	ticker := time.NewTicker(config.ReconcileInterval)
	for range ticker.C {
		reconcileBalances()
	}
}

func reconcileBalances() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	balances, err := storage.ListBalances(ctx)
	if err != nil {
		logger.Log.Error("Error listing balances", zap.Error(err))
		return
	}

	for _, balance := range balances {
		transactions, err := storage.GetAllTransactions(ctx, balance.UserID)
		if err != nil {
			logger.Log.Error("Error loading transactions",
				zap.String("userID", balance.UserID.String()), zap.Error(err))
			continue
		}

		recomputed := ledger.Balance(transactions)
		if recomputed == balance.Points {
			continue
		}

		logger.Log.Warn("Repairing drifted balance",
			zap.String("userID", balance.UserID.String()),
			zap.Int("counter", balance.Points),
			zap.Int("ledger", recomputed))

		repaired, err := storage.RepairBalance(ctx, balance.UserID, balance.Points, recomputed)
		if err != nil {
			logger.Log.Error("Failed to repair balance",
				zap.String("userID", balance.UserID.String()), zap.Error(err))
			continue
		}
		if !repaired {
			logger.Log.Info("Balance moved during reconciliation, skipping",
				zap.String("userID", balance.UserID.String()))
		}
	}
}
