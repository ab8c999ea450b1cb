// Package ledger reduces a user's transaction history to a point balance.
// The ledger is the authoritative source of truth; the persisted counter in
// reward_balances is only a cached projection of this reduction.
package ledger

import (
	"strings"

	"github.com/sol1corejz/ecotrack/internal/models"
)

// Balance sums earned_* amounts and subtracts redeemed amounts, flooring the
// result at zero. Entries with an unrecognized kind contribute nothing, so a
// malformed row can never fail the reduction. Order of entries is irrelevant.
func Balance(transactions []models.Transaction) int {
	var balance int

	for _, tx := range transactions {
		switch {
		case strings.HasPrefix(tx.Kind, "earned"):
			balance += tx.Amount
		case tx.Kind == models.TxRedeemed:
			balance -= tx.Amount
		}
	}

	if balance < 0 {
		return 0
	}
	return balance
}
