package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/longsangsabo/sabo-pool-v12-sub010/spa"
)

// PlayerLedger is one player's full transaction history.
type PlayerLedger struct {
	PlayerID     uuid.UUID
	Transactions []spa.Transaction
}

// PointsLeaderboard aggregates every ledger into balances and ranks them
// for the timeframe. Balances are independent per player, so they compute
// concurrently; the final ordering is stable across runs because ledgers
// keep their input order into the sort.
func (s *Service) PointsLeaderboard(ledgers []PlayerLedger, timeframe spa.Timeframe) []spa.LeaderboardEntry {
	now := time.Now()
	balances := make([]spa.PointsBalance, len(ledgers))

	var wg sync.WaitGroup
	for i := range ledgers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			balances[i] = spa.BalanceAt(ledgers[i].Transactions, now)
			if balances[i].PlayerID == uuid.Nil {
				balances[i].PlayerID = ledgers[i].PlayerID
			}
		}(i)
	}
	wg.Wait()

	return spa.Leaderboard(balances, timeframe)
}
