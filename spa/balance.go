package spa

import (
	"time"

	"github.com/google/uuid"
)

const recentWindow = 7 * 24 * time.Hour

// PointsBalance is derived from a player's transaction list on demand,
// never stored. CurrentBalance may go negative when a redemption exceeds
// the prior balance; authorizing redemptions is the caller's concern.
type PointsBalance struct {
	PlayerID       uuid.UUID
	CurrentBalance int
	TotalEarned    int
	TotalSpent     int
	RecentEarned   int
	LastUpdated    time.Time
}

// Balance aggregates a single player's ledger as of now.
func Balance(transactions []Transaction) PointsBalance {
	return BalanceAt(transactions, time.Now())
}

// BalanceAt aggregates a ledger against an explicit clock. Earned sums
// every non-redemption transaction; spent sums redemption magnitudes;
// recent covers the trailing seven days of earnings.
func BalanceAt(transactions []Transaction, now time.Time) PointsBalance {
	b := PointsBalance{LastUpdated: now}
	if len(transactions) > 0 {
		b.PlayerID = transactions[0].PlayerID
	}

	cutoff := now.Add(-recentWindow)
	for _, tx := range transactions {
		if tx.Activity == ActivityRedemption {
			spent := tx.TotalPoints
			if spent < 0 {
				spent = -spent
			}
			b.TotalSpent += spent
			continue
		}
		b.TotalEarned += tx.TotalPoints
		if !tx.Timestamp.Before(cutoff) {
			b.RecentEarned += tx.TotalPoints
		}
	}

	b.CurrentBalance = b.TotalEarned - b.TotalSpent
	return b
}
