package elo

import (
	"math"
	"testing"
)

func TestVolatility(t *testing.T) {
	if got := Volatility(nil, 10); got != 0 {
		t.Errorf("Volatility(nil) = %v, want 0", got)
	}
	if got := Volatility([]float64{12}, 10); got != 0 {
		t.Errorf("single sample volatility = %v, want 0", got)
	}
	if got := Volatility([]float64{10, 10, 10, 10}, 10); got != 0 {
		t.Errorf("flat history volatility = %v, want 0", got)
	}
	// stddev of {-20, 20} is 20, normalized 0.2
	if got := Volatility([]float64{-20, 20}, 10); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Volatility = %v, want 0.2", got)
	}
	// window keeps only the last two samples
	if got := Volatility([]float64{500, -20, 20}, 2); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("windowed Volatility = %v, want 0.2", got)
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore([]int{1500}); got != 100 {
		t.Errorf("short history = %v, want 100", got)
	}
	if got := ConsistencyScore([]int{1500, 1500, 1500}); got != 100 {
		t.Errorf("flat history = %v, want 100", got)
	}
	steady := ConsistencyScore([]int{1500, 1510, 1505, 1495})
	wild := ConsistencyScore([]int{1500, 1900, 1100, 1800})
	if steady <= wild {
		t.Errorf("steady %d should beat wild %d", steady, wild)
	}
}

func TestRecentForm(t *testing.T) {
	if got := RecentForm(nil); got != 0 {
		t.Errorf("empty form = %v, want 0", got)
	}
	if got := RecentForm([]bool{true, true, false, false}); got != 50 {
		t.Errorf("RecentForm = %v, want 50", got)
	}
	if got := RecentForm([]bool{true, true, true}); got != 100 {
		t.Errorf("RecentForm = %v, want 100", got)
	}
}

func TestEfficiency(t *testing.T) {
	if got := Efficiency(100, 0); got != 0 {
		t.Errorf("no matches efficiency = %v, want 0", got)
	}
	if got := Efficiency(100, 8); got != 12.5 {
		t.Errorf("Efficiency = %v, want 12.5", got)
	}
	if got := Efficiency(-30, 9); got != -3.33 {
		t.Errorf("Efficiency = %v, want -3.33", got)
	}
}
