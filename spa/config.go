package spa

// Config holds the tunable multipliers and thresholds of the SPA point
// economy. Supplied by the caller at construction time; DefaultConfig
// documents the shipped values.
type Config struct {
	BasePointsPerMatch       int     `toml:"base_points_per_match"`
	WinBonusMultiplier       float64 `toml:"win_bonus_multiplier"`
	TournamentBaseMultiplier float64 `toml:"tournament_base_multiplier"`
	ChallengeBonusMultiplier float64 `toml:"challenge_bonus_multiplier"`
	DailyActivityBonus       int     `toml:"daily_activity_bonus"`
	WeeklyActivityBonus      int     `toml:"weekly_activity_bonus"`
	MonthlyActivityBonus     int     `toml:"monthly_activity_bonus"`
	StreakBonusThreshold     int     `toml:"streak_bonus_threshold"`
	StreakBonusMultiplier    float64 `toml:"streak_bonus_multiplier"`
	UpsetBonusMultiplier     float64 `toml:"upset_bonus_multiplier"`
	PerfectGameBonus         int     `toml:"perfect_game_bonus"`
	FirstWinOfDayBonus       int     `toml:"first_win_of_day_bonus"`
}

func DefaultConfig() Config {
	return Config{
		BasePointsPerMatch:       10,
		WinBonusMultiplier:       1.5,
		TournamentBaseMultiplier: 2.0,
		ChallengeBonusMultiplier: 1.25,
		DailyActivityBonus:       50,
		WeeklyActivityBonus:      200,
		MonthlyActivityBonus:     1000,
		StreakBonusThreshold:     3,
		StreakBonusMultiplier:    1.1,
		UpsetBonusMultiplier:     2.0,
		PerfectGameBonus:         100,
		FirstWinOfDayBonus:       25,
	}
}
