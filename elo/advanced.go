package elo

import "math"

// Config is supplied by the caller at construction time. The boolean
// toggles enable the advanced K-factor modifiers individually.
type Config struct {
	KFactor              int  `toml:"k_factor"`
	RatingFloor          int  `toml:"rating_floor"`
	RatingCeiling        int  `toml:"rating_ceiling"`
	VolatilityAdjustment bool `toml:"volatility_adjustment"`
	StreakBonus          bool `toml:"streak_bonus"`
	TournamentBonus      bool `toml:"tournament_bonus"`
	UpsetBonus           bool `toml:"upset_bonus"`
}

func DefaultConfig() Config {
	return Config{
		KFactor:              DefaultKFactor,
		RatingFloor:          RatingFloor,
		RatingCeiling:        RatingCeiling,
		VolatilityAdjustment: true,
		StreakBonus:          true,
		TournamentBonus:      true,
		UpsetBonus:           true,
	}
}

type Side int

const (
	SideA Side = 1
	SideB Side = 2
)

// Match carries both players' state going into an advanced calculation.
// Constructed per call, never persisted here.
type Match struct {
	RatingA     int
	RatingB     int
	MatchesA    int
	MatchesB    int
	StreakA     int
	StreakB     int
	VolatilityA float64
	VolatilityB float64
}

// KFactorFunc resolves the tier-based K-factor for a rating. The service
// layer passes the memoizing cache here.
type KFactorFunc func(rating int) int

type AdvancedResult struct {
	DeltaA    int
	DeltaB    int
	ExpectedA float64
	ExpectedB float64
	KFactorA  float64
	KFactorB  float64
	FinalA    int
	FinalB    int
}

// AdvancedUpdate calculates both players' rating changes with per-player
// K-factors. Modifiers multiply K, not the delta, so the two deltas are
// generally not exact negations of each other.
//
// The streak modifier rewards the winner for ending the loser's win
// streak (loser streak > 3 triggers it); a player's own streak never
// raises their K.
func AdvancedUpdate(cfg Config, tierK KFactorFunc, m Match, winner Side) AdvancedResult {
	ea := ExpectedScore(m.RatingA, m.RatingB)
	eb := 1 - ea

	actualA, actualB := 0.0, 1.0
	if winner == SideA {
		actualA, actualB = 1.0, 0.0
	}

	ka := baseKFactor(cfg, tierK, m.RatingA, m.MatchesA)
	kb := baseKFactor(cfg, tierK, m.RatingB, m.MatchesB)

	if cfg.VolatilityAdjustment {
		ka *= 1 + m.VolatilityA*0.1
		kb *= 1 + m.VolatilityB*0.1
	}

	if cfg.StreakBonus {
		if winner == SideA && m.StreakB > streakBreakLength {
			ka *= 1.2
		} else if winner == SideB && m.StreakA > streakBreakLength {
			kb *= 1.2
		}
	}

	if cfg.UpsetBonus {
		if winner == SideA && m.RatingB-m.RatingA > upsetRatingGap {
			ka *= 1.5
		} else if winner == SideB && m.RatingA-m.RatingB > upsetRatingGap {
			kb *= 1.5
		}
	}

	deltaA := int(math.Round(ka * (actualA - ea)))
	deltaB := int(math.Round(kb * (actualB - eb)))

	return AdvancedResult{
		DeltaA:    deltaA,
		DeltaB:    deltaB,
		ExpectedA: ea,
		ExpectedB: eb,
		KFactorA:  ka,
		KFactorB:  kb,
		FinalA:    clampTo(m.RatingA+deltaA, cfg.RatingFloor, cfg.RatingCeiling),
		FinalB:    clampTo(m.RatingB+deltaB, cfg.RatingFloor, cfg.RatingCeiling),
	}
}

// baseKFactor picks the starting K before modifiers. Players still inside
// the calibration window always get the elevated new-player K.
func baseKFactor(cfg Config, tierK KFactorFunc, rating, matchesPlayed int) float64 {
	if matchesPlayed < NewPlayerMatches {
		return NewPlayerKFactor
	}
	if tierK != nil {
		return float64(tierK(rating))
	}
	return float64(cfg.KFactor)
}
