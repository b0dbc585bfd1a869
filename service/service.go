package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/longsangsabo/sabo-pool-v12-sub010/cache"
	"github.com/longsangsabo/sabo-pool-v12-sub010/config"
	"github.com/longsangsabo/sabo-pool-v12-sub010/domain"
	"github.com/longsangsabo/sabo-pool-v12-sub010/elo"
	"github.com/longsangsabo/sabo-pool-v12-sub010/rank"
	"github.com/longsangsabo/sabo-pool-v12-sub010/spa"
)

const kFactorTTL = time.Hour

// Service ties the rating math, rank catalog and point economy together.
// It holds no player storage; callers pass player state in and persist
// the outcomes.
type Service struct {
	cfg      config.Config
	log      *logrus.Logger
	ranks    *rank.Catalog
	kfactors *cache.KFactor
}

// New builds the service. A malformed rank catalog is a startup failure,
// not something to limp along with.
func New(cfg config.Config, log *logrus.Logger) (*Service, error) {
	catalog, err := rank.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("building rank catalog: %w", err)
	}
	s := &Service{
		cfg:   cfg,
		log:   log,
		ranks: catalog,
	}
	s.kfactors = cache.NewKFactor(kFactorTTL, func(rating int) int {
		return catalog.TierForRating(rating).KFactor
	})
	return s, nil
}

// Ranks exposes the validated tier catalog.
func (s *Service) Ranks() *rank.Catalog {
	return s.ranks
}

// Progression reports how far a rating sits inside its tier.
func (s *Service) Progression(rating int) rank.Progression {
	return s.ranks.Progression(rating)
}

// Predict estimates the outcome of a hypothetical pairing.
func (s *Service) Predict(ratingA, ratingB int) elo.Prediction {
	return elo.PredictMatch(ratingA, ratingB)
}

// MatchOutcome is everything a single match produced: the rating exchange,
// both players' tiers after it, and one points transaction per player.
type MatchOutcome struct {
	Rating  elo.AdvancedResult
	RankA   rank.Code
	RankB   rank.Code
	PointsA spa.Transaction
	PointsB spa.Transaction
}

// ProcessMatch scores one finished match between players a and b. Player
// structs carry the state going in; the outcome carries the state coming
// out. Draws exchange ratings through the plain formula since none of the
// winner-side K modifiers apply.
func (s *Service) ProcessMatch(event domain.MatchEvent, a, b domain.Player) (MatchOutcome, error) {
	if err := event.Validate(); err != nil {
		return MatchOutcome{}, err
	}
	if event.PlayerA != a.ID || event.PlayerB != b.ID {
		return MatchOutcome{}, fmt.Errorf("event players %s/%s do not match state %s/%s",
			event.PlayerA, event.PlayerB, a.ID, b.ID)
	}

	m := elo.Match{
		RatingA:     a.EloRating,
		RatingB:     b.EloRating,
		MatchesA:    a.MatchesPlayed,
		MatchesB:    b.MatchesPlayed,
		StreakA:     a.CurrentStreak,
		StreakB:     b.CurrentStreak,
		VolatilityA: a.Volatility,
		VolatilityB: b.Volatility,
	}

	var rating elo.AdvancedResult
	switch {
	case event.Draw():
		rating = s.drawUpdate(m)
	case event.Winner == a.ID:
		rating = elo.AdvancedUpdate(s.cfg.ELO, s.kfactors.Get, m, elo.SideA)
	default:
		rating = elo.AdvancedUpdate(s.cfg.ELO, s.kfactors.Get, m, elo.SideB)
	}

	outcome := MatchOutcome{
		Rating:  rating,
		RankA:   s.ranks.TierForRating(rating.FinalA).Code,
		RankB:   s.ranks.TierForRating(rating.FinalB).Code,
		PointsA: spa.MatchPoints(s.activityFor(event, a, b), s.cfg.SPA),
		PointsB: spa.MatchPoints(s.activityFor(event, b, a), s.cfg.SPA),
	}

	s.log.WithFields(logrus.Fields{
		"match":   event.ID,
		"playerA": a.ID,
		"playerB": b.ID,
		"deltaA":  rating.DeltaA,
		"deltaB":  rating.DeltaB,
		"pointsA": outcome.PointsA.TotalPoints,
		"pointsB": outcome.PointsB.TotalPoints,
	}).Debug("match processed")

	return outcome, nil
}

// drawUpdate applies the symmetric half-score exchange. Only the
// calibration and tier K-factors matter here.
func (s *Service) drawUpdate(m elo.Match) elo.AdvancedResult {
	ka := s.kFor(m.RatingA, m.MatchesA)
	kb := s.kFor(m.RatingB, m.MatchesB)
	finalA := elo.PlayerUpdate(m.RatingA, m.RatingB, elo.Draw, ka)
	finalB := elo.PlayerUpdate(m.RatingB, m.RatingA, elo.Draw, kb)
	ea := elo.ExpectedScore(m.RatingA, m.RatingB)
	return elo.AdvancedResult{
		DeltaA:    finalA - m.RatingA,
		DeltaB:    finalB - m.RatingB,
		ExpectedA: ea,
		ExpectedB: 1 - ea,
		KFactorA:  float64(ka),
		KFactorB:  float64(kb),
		FinalA:    finalA,
		FinalB:    finalB,
	}
}

func (s *Service) kFor(rating, matchesPlayed int) int {
	if matchesPlayed < elo.NewPlayerMatches {
		return elo.NewPlayerKFactor
	}
	return s.kfactors.Get(rating)
}

func (s *Service) activityFor(event domain.MatchEvent, owner, opponent domain.Player) spa.Activity {
	result := spa.ResultDraw
	if !event.Draw() {
		if event.Winner == owner.ID {
			result = spa.ResultWin
		} else {
			result = spa.ResultLoss
		}
	}
	return spa.Activity{
		PlayerID:       owner.ID,
		Result:         result,
		IsTournament:   event.IsTournament,
		IsChallenge:    event.IsChallenge,
		CurrentStreak:  owner.CurrentStreak,
		PlayerRating:   owner.EloRating,
		OpponentRating: opponent.EloRating,
		PerfectGame:    event.PerfectGame && result == spa.ResultWin,
		FirstWinOfDay:  event.FirstWinOfDay && result == spa.ResultWin,
		MatchID:        event.ID,
		PlayedAt:       event.Date,
	}
}

// TournamentOutcome pairs the flat rating award with the prize
// transaction. Prize is nil when the bracket format is unknown.
type TournamentOutcome struct {
	RatingAward int
	Prize       *spa.Transaction
}

// ProcessTournament converts a final placement into rating and points.
// The rating award honors the tournament bonus toggle; the prize always
// pays out.
func (s *Service) ProcessTournament(result domain.TournamentResult, playerRating int) (TournamentOutcome, error) {
	if err := result.Validate(); err != nil {
		return TournamentOutcome{}, err
	}

	var outcome TournamentOutcome
	if s.cfg.ELO.TournamentBonus {
		outcome.RatingAward = elo.TournamentAward(
			result.FinalPosition, result.TotalParticipants,
			result.AvgOpponentRating, playerRating)
	}

	prize := spa.TournamentPrize(
		spa.TournamentKind(result.Kind),
		result.FinalPosition, result.TotalParticipants,
		s.multiplierFor(result.EventKind))
	if prize == nil {
		s.log.WithFields(logrus.Fields{
			"tournament": result.ID,
			"kind":       result.Kind,
		}).Warn("no prize table for tournament kind")
	} else {
		prize.PlayerID = result.PlayerID
		prize.TournamentID = result.ID
		prize.Timestamp = timestampOrNow(result.Date)
	}
	outcome.Prize = prize

	return outcome, nil
}

// ProcessChallenge converts a challenge attempt into its points
// transaction.
func (s *Service) ProcessChallenge(result domain.ChallengeResult) (spa.Transaction, error) {
	if err := result.Validate(); err != nil {
		return spa.Transaction{}, err
	}
	tx := spa.ChallengePoints(
		spa.ChallengeKind(result.Kind),
		result.CompletionPercent,
		s.multiplierFor(result.EventKind))
	tx.PlayerID = result.PlayerID
	tx.ChallengeID = result.ID
	tx.Timestamp = timestampOrNow(result.Date)
	return tx, nil
}

// ProcessAchievement builds the transaction for a freshly unlocked
// achievement.
func (s *Service) ProcessAchievement(playerID uuid.UUID, kind spa.AchievementKind) spa.Transaction {
	tx := spa.AchievementPoints(kind)
	tx.PlayerID = playerID
	tx.Timestamp = time.Now()
	return tx
}

func (s *Service) multiplierFor(eventKind string) spa.Multiplier {
	if eventKind == "" {
		return spa.Multiplier{}
	}
	return spa.EventMultiplier(spa.EventKind(eventKind), 1)
}

func timestampOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
