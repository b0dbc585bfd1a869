package spa

import (
	"sort"

	"github.com/google/uuid"
)

// Timeframe selects which balance figure a leaderboard ranks on.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeAllTime Timeframe = "all_time"
)

// LeaderboardEntry is a 1-based ranking row, recomputed on demand.
type LeaderboardEntry struct {
	Rank     int
	PlayerID uuid.UUID
	Points   int
}

// Leaderboard ranks balance snapshots. Daily, weekly and monthly boards
// sort on recent earnings, all-time on total earnings. The sort is
// stable: ties keep their input order.
func Leaderboard(balances []PointsBalance, timeframe Timeframe) []LeaderboardEntry {
	points := func(b PointsBalance) int {
		if timeframe == TimeframeAllTime {
			return b.TotalEarned
		}
		return b.RecentEarned
	}

	sorted := make([]PointsBalance, len(balances))
	copy(sorted, balances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return points(sorted[i]) > points(sorted[j])
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, b := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: b.PlayerID,
			Points:   points(b),
		}
	}
	return entries
}
