package spa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentPrizeBands(t *testing.T) {
	tests := []struct {
		name string
		kind TournamentKind
		pos  int
		want int
	}{
		{"DE16 champion", DE16, 1, 2000},
		{"DE16 runner-up", DE16, 2, 1200},
		{"DE16 semi-finalist", DE16, 3, 800},
		{"DE16 fourth shares the semi-final band", DE16, 4, 800},
		{"DE16 quarter-finalist", DE16, 5, 400},
		{"DE16 last quarter-finalist", DE16, 8, 400},
		{"DE16 first round exit", DE16, 9, 200},
		{"DE16 last bracket position", DE16, 16, 200},
		{"DE8 champion", DE8, 1, 1000},
		{"DE8 third", DE8, 3, 400},
		{"SE16 champion", SE16, 1, 1500},
		{"SE16 first round exit", SE16, 12, 150},
		{"SE8 runner-up", SE8, 2, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := TournamentPrize(tt.kind, tt.pos, 16, Multiplier{})
			require.NotNil(t, tx)
			assert.Equal(t, tt.want, tx.TotalPoints)
			assert.Equal(t, tt.want, tx.BasePoints)
			assert.Empty(t, tx.Bonuses)
		})
	}
}

func TestTournamentPrizeBeyondBracket(t *testing.T) {
	// 5% of the DE16 champion prize beats the 50-point floor.
	tx := TournamentPrize(DE16, 17, 24, Multiplier{})
	require.NotNil(t, tx)
	assert.Equal(t, 100, tx.TotalPoints)

	// 5% of the DE8 champion prize is exactly the floor.
	tx = TournamentPrize(DE8, 9, 12, Multiplier{})
	require.NotNil(t, tx)
	assert.Equal(t, 50, tx.TotalPoints)

	// SE8 champion prize is 800, so 5% falls under the floor.
	tx = TournamentPrize(SE8, 10, 12, Multiplier{})
	require.NotNil(t, tx)
	assert.Equal(t, 50, tx.TotalPoints)
}

func TestTournamentPrizeUnknownInputs(t *testing.T) {
	assert.Nil(t, TournamentPrize(TournamentKind("RR4"), 1, 4, Multiplier{}))
	assert.Nil(t, TournamentPrize(DE16, 0, 16, Multiplier{}))
	assert.Nil(t, TournamentPrize(DE16, -3, 16, Multiplier{}))
}

func TestTournamentPrizeEventMultiplier(t *testing.T) {
	m := EventMultiplier(EventDoublePoints, 1)
	tx := TournamentPrize(DE16, 1, 16, m)
	require.NotNil(t, tx)

	assert.Equal(t, 2000, tx.BasePoints)
	assert.Equal(t, 4000, tx.TotalPoints)
	require.Len(t, tx.Bonuses, 1)
	assert.Equal(t, "event_multiplier", tx.Bonuses[0].Type)
	assert.Equal(t, 2000, tx.Bonuses[0].Amount)

	// A zero-value multiplier is treated as neutral.
	tx = TournamentPrize(DE16, 1, 16, Multiplier{})
	require.NotNil(t, tx)
	assert.Equal(t, 2000, tx.TotalPoints)
}

func TestChallengePoints(t *testing.T) {
	tests := []struct {
		name       string
		kind       ChallengeKind
		completion int
		m          Multiplier
		wantBase   int
		wantTotal  int
	}{
		{"daily complete", DailyChallenge, 100, Multiplier{}, 100, 100},
		{"daily half done", DailyChallenge, 50, Multiplier{}, 50, 50},
		{"weekly complete doubled", WeeklyChallenge, 100, EventMultiplier(EventDoublePoints, 1), 500, 1000},
		{"monthly partial happy hour", MonthlyChallenge, 25, EventMultiplier(EventHappyHour, 1), 500, 750},
		{"practice match", PracticeMatch, 100, Multiplier{}, 10, 10},
		{"completion clamped high", RankedMatch, 140, Multiplier{}, 50, 50},
		{"completion clamped low", RankedMatch, -10, Multiplier{}, 0, 0},
		{"unknown kind pays nothing", ChallengeKind("bonus_round"), 100, Multiplier{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ChallengePoints(tt.kind, tt.completion, tt.m)
			assert.Equal(t, tt.wantBase, tx.BasePoints)
			assert.Equal(t, tt.wantTotal, tx.TotalPoints)
			assert.Equal(t, tt.wantTotal-tt.wantBase, tx.BonusPoints)
		})
	}
}

func TestAchievementPoints(t *testing.T) {
	tx := AchievementPoints(WinStreak10)
	assert.Equal(t, 600, tx.TotalPoints)
	assert.Equal(t, ActivityAchievementUnlock, tx.Activity)
	assert.Equal(t, "win_streak_10", tx.AchievementID)

	assert.Equal(t, 2000, AchievementPoints(PerfectMonth).TotalPoints)
	assert.Zero(t, AchievementPoints(AchievementKind("unheard_of")).TotalPoints)
}
