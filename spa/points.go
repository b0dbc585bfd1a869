package spa

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Result of a match from the transaction owner's perspective.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Activity describes a completed match for point calculation. Ratings are
// the values going into the match; streak is the owner's current win
// streak.
type Activity struct {
	PlayerID       uuid.UUID
	Result         Result
	IsTournament   bool
	IsChallenge    bool
	CurrentStreak  int
	PlayerRating   int
	OpponentRating int
	PerfectGame    bool
	FirstWinOfDay  bool
	MatchID        uuid.UUID
	TournamentID   uuid.UUID
	ChallengeID    uuid.UUID
	PlayedAt       time.Time
}

const upsetPointsGap = 100

// MatchPoints builds the points transaction for one completed match.
// Bonuses apply in a fixed order: win, tournament, challenge, streak,
// upset, perfect game, first win of day. Multiplicative bonuses compute
// from the accumulated running total; the upset bonus works from the
// original base.
func MatchPoints(a Activity, cfg Config) Transaction {
	points := cfg.BasePointsPerMatch
	var bonuses []Bonus

	add := func(kind string, amount int, description string) {
		points += amount
		bonuses = append(bonuses, Bonus{Type: kind, Amount: amount, Description: description})
	}

	if a.Result == ResultWin {
		add("win_bonus", round(float64(points)*(cfg.WinBonusMultiplier-1)), "Match victory bonus")
	}

	if a.IsTournament {
		add("tournament_bonus", round(float64(points)*(cfg.TournamentBaseMultiplier-1)), "Tournament match bonus")
	}

	if a.IsChallenge {
		add("challenge_bonus", round(float64(points)*(cfg.ChallengeBonusMultiplier-1)), "Challenge match bonus")
	}

	if cfg.StreakBonusThreshold > 0 && a.CurrentStreak >= cfg.StreakBonusThreshold {
		mult := math.Pow(cfg.StreakBonusMultiplier, float64(a.CurrentStreak/cfg.StreakBonusThreshold))
		add("streak_bonus",
			round(float64(points)*(mult-1)),
			fmt.Sprintf("%d-game win streak bonus", a.CurrentStreak))
	}

	if a.Result == ResultWin && a.OpponentRating-a.PlayerRating > upsetPointsGap {
		diff := a.OpponentRating - a.PlayerRating
		add("upset_bonus",
			round(float64(diff)/100*float64(cfg.BasePointsPerMatch)*cfg.UpsetBonusMultiplier),
			fmt.Sprintf("Upset victory bonus (+%d rating difference)", diff))
	}

	if a.PerfectGame {
		add("perfect_game_bonus", cfg.PerfectGameBonus, "Perfect game bonus")
	}

	if a.FirstWinOfDay {
		add("daily_first_win_bonus", cfg.FirstWinOfDayBonus, "First win of the day bonus")
	}

	return Transaction{
		PlayerID:     a.PlayerID,
		Activity:     ActivityMatch,
		BasePoints:   cfg.BasePointsPerMatch,
		BonusPoints:  points - cfg.BasePointsPerMatch,
		TotalPoints:  points,
		Bonuses:      bonuses,
		Timestamp:    timestampOrNow(a.PlayedAt),
		MatchID:      a.MatchID,
		TournamentID: a.TournamentID,
		ChallengeID:  a.ChallengeID,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func timestampOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
