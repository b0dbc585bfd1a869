package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPlayer      = errors.New("both players must be present")
	ErrSamePlayer         = errors.New("a player cannot play against themselves")
	ErrWrongWinner        = errors.New("winner id does not match either player")
	ErrInvalidPlacement   = errors.New("final position must be within the field")
	ErrInvalidCompletion  = errors.New("completion percent must be between 0 and 100")
	ErrMissingParticipant = errors.New("participant id must be present")
)

// MatchEvent is a finished match between two players. A nil Winner
// records a draw. FirstWinOfDay marks the winner's first win of the
// calendar day; the flag is meaningless on a draw.
type MatchEvent struct {
	ID            uuid.UUID
	PlayerA       uuid.UUID
	PlayerB       uuid.UUID
	Winner        uuid.UUID
	IsTournament  bool
	IsChallenge   bool
	PerfectGame   bool
	FirstWinOfDay bool
	Date          time.Time
}

func (m MatchEvent) Validate() error {
	if m.PlayerA == uuid.Nil || m.PlayerB == uuid.Nil {
		return ErrMissingPlayer
	}
	if m.PlayerA == m.PlayerB {
		return ErrSamePlayer
	}
	if m.Winner != uuid.Nil && m.Winner != m.PlayerA && m.Winner != m.PlayerB {
		return ErrWrongWinner
	}
	return nil
}

func (m MatchEvent) Draw() bool {
	return m.Winner == uuid.Nil
}

// TournamentResult is a player's final placement in a bracket. Kind names
// the bracket format ("DE16", "SE8", ...); EventKind names an active
// special event, empty when none is running.
type TournamentResult struct {
	ID                uuid.UUID
	PlayerID          uuid.UUID
	Kind              string
	FinalPosition     int
	TotalParticipants int
	AvgOpponentRating int
	EventKind         string
	Date              time.Time
}

func (r TournamentResult) Validate() error {
	if r.PlayerID == uuid.Nil {
		return ErrMissingParticipant
	}
	if r.FinalPosition < 1 || r.TotalParticipants < 1 || r.FinalPosition > r.TotalParticipants {
		return ErrInvalidPlacement
	}
	return nil
}

// ChallengeResult is a challenge attempt, possibly partial.
type ChallengeResult struct {
	ID                uuid.UUID
	PlayerID          uuid.UUID
	Kind              string
	CompletionPercent int
	EventKind         string
	Date              time.Time
}

func (r ChallengeResult) Validate() error {
	if r.PlayerID == uuid.Nil {
		return ErrMissingParticipant
	}
	if r.CompletionPercent < 0 || r.CompletionPercent > 100 {
		return ErrInvalidCompletion
	}
	return nil
}
