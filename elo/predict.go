package elo

import "math"

type Favored string

const (
	FavoredEven Favored = "even"
	FavoredA    Favored = "player_a"
	FavoredB    Favored = "player_b"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type Prediction struct {
	WinProbA   float64
	WinProbB   float64
	RatingGap  int
	Favored    Favored
	Confidence Confidence
}

// PredictMatch estimates the outcome of a hypothetical match. Probabilities
// within 0.1 of a coin flip count as even; low confidence is reserved for
// the even case.
func PredictMatch(ra, rb int) Prediction {
	pa := ExpectedScore(ra, rb)
	p := Prediction{
		WinProbA:  pa,
		WinProbB:  1 - pa,
		RatingGap: abs(ra - rb),
	}
	switch {
	case math.Abs(pa-0.5) < 0.1:
		p.Favored = FavoredEven
		p.Confidence = ConfidenceLow
	case pa > 0.5:
		p.Favored = FavoredA
		p.Confidence = gapConfidence(p.RatingGap)
	default:
		p.Favored = FavoredB
		p.Confidence = gapConfidence(p.RatingGap)
	}
	return p
}

func gapConfidence(gap int) Confidence {
	if gap > upsetRatingGap {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
