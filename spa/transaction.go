package spa

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType tags what earned (or spent) the points.
type ActivityType string

const (
	ActivityMatch             ActivityType = "match"
	ActivityTournament        ActivityType = "tournament"
	ActivityChallenge         ActivityType = "challenge"
	ActivityDaily             ActivityType = "daily_activity"
	ActivityWeekly            ActivityType = "weekly_activity"
	ActivityMonthly           ActivityType = "monthly_activity"
	ActivityAchievementUnlock ActivityType = "achievement_unlock"
	ActivityRedemption        ActivityType = "redemption"
)

// Bonus is a single named line item on a transaction.
type Bonus struct {
	Type        string
	Amount      int
	Description string
}

// Transaction is one append-only ledger entry. Created once per event,
// never mutated; persistence is the caller's job.
type Transaction struct {
	PlayerID    uuid.UUID
	Activity    ActivityType
	BasePoints  int
	BonusPoints int
	TotalPoints int
	Bonuses     []Bonus
	Timestamp   time.Time

	// Correlation ids, uuid.Nil when not applicable.
	MatchID       uuid.UUID
	TournamentID  uuid.UUID
	ChallengeID   uuid.UUID
	AchievementID string
}

// ValidateTransaction reports whether a transaction is internally
// consistent: non-negative quantities, total equals base plus bonus, and
// the player and activity are identified. A transaction failing this must
// never be persisted.
func ValidateTransaction(tx Transaction) bool {
	bonusSum := 0
	for _, b := range tx.Bonuses {
		bonusSum += b.Amount
	}
	return tx.TotalPoints >= 0 &&
		tx.BasePoints >= 0 &&
		tx.BonusPoints >= 0 &&
		tx.BonusPoints == bonusSum &&
		tx.TotalPoints == tx.BasePoints+tx.BonusPoints &&
		tx.PlayerID != uuid.Nil &&
		tx.Activity != ""
}
