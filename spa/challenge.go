package spa

import "fmt"

// ChallengeKind selects a base reward from the challenge table.
type ChallengeKind string

const (
	DailyChallenge   ChallengeKind = "daily_challenge"
	WeeklyChallenge  ChallengeKind = "weekly_challenge"
	MonthlyChallenge ChallengeKind = "monthly_challenge"
	SpecialEvent     ChallengeKind = "special_event"
	RankedMatch      ChallengeKind = "ranked_match"
	CasualMatch      ChallengeKind = "casual_match"
	PracticeMatch    ChallengeKind = "practice_match"
)

var challengeRewards = map[ChallengeKind]int{
	DailyChallenge:   100,
	WeeklyChallenge:  500,
	MonthlyChallenge: 2000,
	SpecialEvent:     1000,
	RankedMatch:      50,
	CasualMatch:      25,
	PracticeMatch:    10,
}

// ChallengePoints builds the transaction for a completed (or partially
// completed) challenge. The table reward scales linearly with completion
// percent before the event multiplier applies; the multiplied share is
// recorded as a bonus line so the additivity invariant holds.
func ChallengePoints(kind ChallengeKind, completionPercent int, m Multiplier) Transaction {
	reward := challengeRewards[kind]
	if completionPercent < 0 {
		completionPercent = 0
	}
	if completionPercent > 100 {
		completionPercent = 100
	}
	base := round(float64(reward) * float64(completionPercent) / 100)

	factor := m.Factor
	if factor == 0 {
		factor = 1
	}
	total := round(float64(base) * factor)

	var bonuses []Bonus
	if total-base > 0 {
		bonuses = append(bonuses, Bonus{
			Type:        "event_multiplier",
			Amount:      total - base,
			Description: fmt.Sprintf("%s multiplier (%gx)", m.Kind, factor),
		})
	}

	return Transaction{
		Activity:    ActivityChallenge,
		BasePoints:  base,
		BonusPoints: total - base,
		TotalPoints: total,
		Bonuses:     bonuses,
	}
}

// AchievementKind selects a flat award from the achievement table.
type AchievementKind string

const (
	FirstTournamentWin       AchievementKind = "first_tournament_win"
	FirstChallengeCompletion AchievementKind = "first_challenge_completion"
	WinStreak5               AchievementKind = "win_streak_5"
	WinStreak10              AchievementKind = "win_streak_10"
	WinStreak20              AchievementKind = "win_streak_20"
	PerfectMonth             AchievementKind = "perfect_month"
	TournamentChampion       AchievementKind = "tournament_champion"
	ChallengeMaster          AchievementKind = "challenge_master"
	ConsistencyAward         AchievementKind = "consistency_award"
	ImprovementAward         AchievementKind = "improvement_award"
)

var achievementRewards = map[AchievementKind]int{
	FirstTournamentWin:       500,
	FirstChallengeCompletion: 200,
	WinStreak5:               300,
	WinStreak10:              600,
	WinStreak20:              1200,
	PerfectMonth:             2000,
	TournamentChampion:       1000,
	ChallengeMaster:          800,
	ConsistencyAward:         400,
	ImprovementAward:         600,
}

// AchievementPoints builds the flat transaction for an unlocked
// achievement.
func AchievementPoints(kind AchievementKind) Transaction {
	points := achievementRewards[kind]
	return Transaction{
		Activity:      ActivityAchievementUnlock,
		BasePoints:    points,
		TotalPoints:   points,
		AchievementID: string(kind),
	}
}
