package elo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tierKByRating(rating int) int {
	switch {
	case rating >= 2400:
		return 24
	case rating >= 2000:
		return 28
	case rating >= 1600:
		return 32
	case rating >= 1200:
		return 35
	default:
		return 40
	}
}

func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.VolatilityAdjustment = false
	cfg.StreakBonus = false
	cfg.UpsetBonus = false
	return cfg
}

func TestAdvancedUpdateNewPlayerKOverride(t *testing.T) {
	m := Match{RatingA: 2500, RatingB: 2500, MatchesA: 5, MatchesB: 100}
	res := AdvancedUpdate(plainConfig(), tierKByRating, m, SideA)

	assert.InDelta(t, 40, res.KFactorA, 1e-9, "calibrating player keeps elevated K regardless of rating")
	assert.InDelta(t, 24, res.KFactorB, 1e-9, "experienced high-rated player uses tier K")
	assert.Less(t, res.KFactorB, res.KFactorA)
}

func TestAdvancedUpdateStreakBreakRewardsWinner(t *testing.T) {
	cfg := plainConfig()
	cfg.StreakBonus = true
	m := Match{RatingA: 1500, RatingB: 1500, MatchesA: 50, MatchesB: 50, StreakB: 5}

	res := AdvancedUpdate(cfg, tierKByRating, m, SideA)
	assert.InDelta(t, 35*1.2, res.KFactorA, 1e-9, "winner K boosted for breaking the loser's streak")
	assert.InDelta(t, 35, res.KFactorB, 1e-9, "loser K untouched")

	// Same streak on the winning side must not trigger anything.
	res = AdvancedUpdate(cfg, tierKByRating, m, SideB)
	assert.InDelta(t, 35, res.KFactorA, 1e-9)
	assert.InDelta(t, 35, res.KFactorB, 1e-9)
}

func TestAdvancedUpdateUpsetBonus(t *testing.T) {
	cfg := plainConfig()
	cfg.UpsetBonus = true
	m := Match{RatingA: 1300, RatingB: 1600, MatchesA: 50, MatchesB: 50}

	res := AdvancedUpdate(cfg, tierKByRating, m, SideA)
	assert.InDelta(t, 35*1.5, res.KFactorA, 1e-9, "underdog winner K boosted")
	assert.InDelta(t, 32, res.KFactorB, 1e-9)

	// Favorite winning the same pairing gets no boost.
	res = AdvancedUpdate(cfg, tierKByRating, m, SideB)
	assert.InDelta(t, 35, res.KFactorA, 1e-9)
	assert.InDelta(t, 32, res.KFactorB, 1e-9)

	// A 200-point gap is not yet an upset.
	m = Match{RatingA: 1400, RatingB: 1600, MatchesA: 50, MatchesB: 50}
	res = AdvancedUpdate(cfg, tierKByRating, m, SideA)
	assert.InDelta(t, 35, res.KFactorA, 1e-9)
}

func TestAdvancedUpdateVolatilityAdjustment(t *testing.T) {
	cfg := plainConfig()
	cfg.VolatilityAdjustment = true
	m := Match{RatingA: 1700, RatingB: 1700, MatchesA: 50, MatchesB: 50, VolatilityA: 1, VolatilityB: 0.5}

	res := AdvancedUpdate(cfg, tierKByRating, m, SideA)
	assert.InDelta(t, 32*1.1, res.KFactorA, 1e-9)
	assert.InDelta(t, 32*1.05, res.KFactorB, 1e-9)
}

func TestAdvancedUpdateAsymmetricDeltas(t *testing.T) {
	cfg := DefaultConfig()
	m := Match{
		RatingA: 1300, RatingB: 1600,
		MatchesA: 50, MatchesB: 50,
		StreakB:     5,
		VolatilityA: 0.8,
	}
	res := AdvancedUpdate(cfg, tierKByRating, m, SideA)

	require.Positive(t, res.DeltaA)
	require.Negative(t, res.DeltaB)
	assert.NotEqual(t, res.DeltaA, -res.DeltaB, "modified K factors make the exchange asymmetric")
	assert.InDelta(t, 1, res.ExpectedA+res.ExpectedB, 1e-9)
}

func TestAdvancedUpdateConfigBoundsAuthoritative(t *testing.T) {
	cfg := plainConfig()
	cfg.RatingFloor = 900
	cfg.RatingCeiling = 1100
	m := Match{RatingA: 1095, RatingB: 905, MatchesA: 5, MatchesB: 5}

	res := AdvancedUpdate(cfg, nil, m, SideA)
	assert.LessOrEqual(t, res.FinalA, 1100)
	assert.GreaterOrEqual(t, res.FinalB, 900)
}

func TestAdvancedUpdateNilLookupFallsBackToConfigK(t *testing.T) {
	cfg := plainConfig()
	m := Match{RatingA: 1500, RatingB: 1500, MatchesA: 50, MatchesB: 50}
	res := AdvancedUpdate(cfg, nil, m, SideA)
	assert.InDelta(t, float64(cfg.KFactor), res.KFactorA, 1e-9)
	assert.Equal(t, 16, res.DeltaA)
	assert.Equal(t, -16, res.DeltaB)
}
