package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/longsangsabo/sabo-pool-v12-sub010/domain"
)

// InitialRating is where every player starts before their first recorded
// match.
const InitialRating = 1000

// ReplayRatings rebuilds every player's rating, match count and streak
// from the full match history, applied strictly in input order. The
// ledger is the source of truth; stored ratings are just a cache of this
// computation.
func (s *Service) ReplayRatings(events []domain.MatchEvent) (map[uuid.UUID]domain.Player, error) {
	players := make(map[uuid.UUID]domain.Player)
	get := func(id uuid.UUID) domain.Player {
		p, ok := players[id]
		if !ok {
			p = domain.Player{ID: id, EloRating: InitialRating}
		}
		return p
	}

	for i, event := range events {
		a := get(event.PlayerA)
		b := get(event.PlayerB)

		outcome, err := s.ProcessMatch(event, a, b)
		if err != nil {
			return nil, fmt.Errorf("replaying match %d: %w", i, err)
		}

		a.EloRating = outcome.Rating.FinalA
		b.EloRating = outcome.Rating.FinalB
		a.MatchesPlayed++
		b.MatchesPlayed++
		a.SpaPoints += outcome.PointsA.TotalPoints
		b.SpaPoints += outcome.PointsB.TotalPoints

		switch event.Winner {
		case a.ID:
			a.CurrentStreak++
			b.CurrentStreak = 0
		case b.ID:
			b.CurrentStreak++
			a.CurrentStreak = 0
		default:
			a.CurrentStreak = 0
			b.CurrentStreak = 0
		}

		players[a.ID] = a
		players[b.ID] = b
	}

	return players, nil
}

// Ratings replays the history and returns players ordered by rating,
// best first. Map iteration order is random, so rating ties break on
// player id to keep the output deterministic.
func (s *Service) Ratings(events []domain.MatchEvent) ([]domain.Player, error) {
	byID, err := s.ReplayRatings(events)
	if err != nil {
		return nil, err
	}
	players := make([]domain.Player, 0, len(byID))
	for _, p := range byID {
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].EloRating != players[j].EloRating {
			return players[i].EloRating > players[j].EloRating
		}
		return players[i].ID.String() < players[j].ID.String()
	})
	return players, nil
}
