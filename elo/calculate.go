package elo

import "math"

type Score float64

const (
	Win  Score = 1
	Draw Score = 0.5
	Lose Score = 0
)

// Rating domain bounds. Every rating returned by this package is clamped
// into [RatingFloor, RatingCeiling].
const (
	RatingFloor   = 800
	RatingCeiling = 3000
)

const (
	// DefaultKFactor is used when no tier-based K is available.
	DefaultKFactor = 32
	// NewPlayerKFactor overrides tier K while a player is calibrating.
	NewPlayerKFactor  = 40
	NewPlayerMatches  = 30
	upsetRatingGap    = 200
	streakBreakLength = 3
)

// ExpectedScore returns the win probability of the player rated ra
// against a player rated rb. ExpectedScore(a,b) + ExpectedScore(b,a) == 1.
func ExpectedScore(ra, rb int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(rb-ra)/400.0))
}

// Clamp forces rating into the package rating domain.
func Clamp(rating int) int {
	return clampTo(rating, RatingFloor, RatingCeiling)
}

// ValidRating reports whether rating is already inside the rating domain.
// Callers that want to reject instead of clamp check this first.
func ValidRating(rating int) bool {
	return rating >= RatingFloor && rating <= RatingCeiling
}

func clampTo(rating, floor, ceiling int) int {
	if rating < floor {
		return floor
	}
	if rating > ceiling {
		return ceiling
	}
	return rating
}

type BasicResult struct {
	DeltaA     int
	DeltaB     int
	NewRatingA int
	NewRatingB int
	ExpectedA  float64
	ExpectedB  float64
}

// BasicUpdate calculates the zero-sum rating exchange for a decided match.
// The winner scores 1, the loser 0; DeltaB is always the exact negation of
// DeltaA. Draws go through PlayerUpdate with Draw instead.
func BasicUpdate(ra, rb int, aWon bool, k int) BasicResult {
	ea := ExpectedScore(ra, rb)
	actual := 1.0
	if !aWon {
		actual = 0
	}
	delta := int(math.Round(float64(k) * (actual - ea)))
	return BasicResult{
		DeltaA:     delta,
		DeltaB:     -delta,
		NewRatingA: Clamp(ra + delta),
		NewRatingB: Clamp(rb - delta),
		ExpectedA:  ea,
		ExpectedB:  1 - ea,
	}
}

// PlayerUpdate calculates a single player's new rating.
// rating - player rating.
// opponent - opponent rating.
// k - coefficient controlling how far one result moves the rating.
// s - score: 1 for win; 0.5 for draw; 0 for lose.
func PlayerUpdate(rating, opponent int, s Score, k int) int {
	e := ExpectedScore(rating, opponent)
	next := float64(rating) + float64(k)*(float64(s)-e)
	return Clamp(int(math.Round(next)))
}
