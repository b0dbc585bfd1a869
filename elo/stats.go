package elo

import "math"

// Volatility measures recent rating instability as the standard deviation
// of the last window rating changes, normalized to roughly 0-1. Fewer than
// two samples reads as perfectly stable.
func Volatility(deltas []float64, window int) float64 {
	if len(deltas) < 2 {
		return 0
	}
	if window > 0 && len(deltas) > window {
		deltas = deltas[len(deltas)-window:]
	}
	return math.Sqrt(variance(deltas)) / 100
}

// ConsistencyScore maps rating-history variance onto a 0-100 scale where
// 100 means the rating never moved.
func ConsistencyScore(history []int) int {
	if len(history) < 2 {
		return 100
	}
	vals := make([]float64, len(history))
	for i, r := range history {
		vals[i] = float64(r)
	}
	sd := math.Sqrt(variance(vals))
	score := 100 - sd/mean(vals)*100
	if score < 0 {
		return 0
	}
	return int(math.Round(score))
}

// RecentForm is the win percentage over the supplied results.
func RecentForm(results []bool) int {
	if len(results) == 0 {
		return 0
	}
	wins := 0
	for _, won := range results {
		if won {
			wins++
		}
	}
	return int(math.Round(float64(wins) / float64(len(results)) * 100))
}

// Efficiency is rating gained per match played, rounded to two decimals.
func Efficiency(ratingGained, matchesPlayed int) float64 {
	if matchesPlayed == 0 {
		return 0
	}
	return math.Round(float64(ratingGained)/float64(matchesPlayed)*100) / 100
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64) float64 {
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(vals))
}
