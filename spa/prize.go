package spa

import "fmt"

// TournamentKind is the bracket format a prize table is defined for.
type TournamentKind string

const (
	DE16 TournamentKind = "DE16"
	DE8  TournamentKind = "DE8"
	SE16 TournamentKind = "SE16"
	SE8  TournamentKind = "SE8"
)

// prizeBand maps the first position of a bracket band to its prize.
// A band covers every position up to the next band's start: in DE16 the
// band starting at 3 pays both semi-finalists (positions 3 and 4).
type prizeBand struct {
	fromPosition int
	points       int
}

type prizeTable struct {
	bracketSize int
	bands       []prizeBand
}

var tournamentPrizes = map[TournamentKind]prizeTable{
	DE16: {bracketSize: 16, bands: []prizeBand{
		{1, 2000}, {2, 1200}, {3, 800}, {5, 400}, {9, 200},
	}},
	DE8: {bracketSize: 8, bands: []prizeBand{
		{1, 1000}, {2, 600}, {3, 400}, {5, 200},
	}},
	SE16: {bracketSize: 16, bands: []prizeBand{
		{1, 1500}, {2, 900}, {3, 600}, {5, 300}, {9, 150},
	}},
	SE8: {bracketSize: 8, bands: []prizeBand{
		{1, 800}, {2, 480}, {3, 320}, {5, 160},
	}},
}

// TournamentPrize builds the prize transaction for a final tournament
// placement. Positions past the bracket size receive participation points
// of max(50, 5% of the champion prize). An unrecognized kind returns nil
// so callers can distinguish "no prize applies" from a zero award. The
// event multiplier lands as a single bonus line over the looked-up base.
func TournamentPrize(kind TournamentKind, finalPosition, totalParticipants int, m Multiplier) *Transaction {
	table, ok := tournamentPrizes[kind]
	if !ok || finalPosition < 1 {
		return nil
	}

	champion := table.bands[0].points
	base := 0
	if finalPosition > table.bracketSize {
		base = maxInt(50, round(float64(champion)*0.05))
	} else {
		for _, band := range table.bands {
			if finalPosition >= band.fromPosition {
				base = band.points
			}
		}
	}

	factor := m.Factor
	if factor == 0 {
		factor = 1
	}
	total := round(float64(base) * factor)

	var bonuses []Bonus
	if total-base > 0 {
		bonuses = append(bonuses, Bonus{
			Type:        "event_multiplier",
			Amount:      total - base,
			Description: fmt.Sprintf("%s multiplier (%gx)", m.Kind, factor),
		})
	}

	return &Transaction{
		Activity:    ActivityTournament,
		BasePoints:  base,
		BonusPoints: total - base,
		TotalPoints: total,
		Bonuses:     bonuses,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
