package domain

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID            uuid.UUID
	Name          string
	RegisteredAt  time.Time
	EloRating     int
	SpaPoints     int
	MatchesPlayed int
	CurrentStreak int

	// Volatility is the player's recent rating instability, typically
	// elo.Volatility over their last rating deltas.
	Volatility float64
}
