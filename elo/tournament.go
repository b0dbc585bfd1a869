package elo

import "math"

// Fixed rating awards by final tournament position.
var positionAwards = map[int]int{
	1: 150,
	2: 100,
	3: 75,
	4: 50,
}

const (
	topHalfAward    = 25
	bottomHalfAward = 10
)

// TournamentAward returns the fixed rating award for a final tournament
// position, plus an overperformance bonus for players who finished above
// what their rating predicted. The bonus only applies to players rated
// below the field average: with no rating deficit there is nothing to
// overperform against, so an average player winning an average field gets
// the position award alone.
func TournamentAward(finalPosition, totalParticipants, avgOpponentRating, playerRating int) int {
	points, ok := positionAwards[finalPosition]
	if !ok {
		if finalPosition <= (totalParticipants+1)/2 {
			points = topHalfAward
		} else {
			points = bottomHalfAward
		}
	}

	if playerRating < avgOpponentRating {
		expected := expectedFinish(playerRating, avgOpponentRating, totalParticipants)
		if expected > finalPosition {
			points += int(math.Round(float64(expected-finalPosition) * 5))
		}
	}
	return points
}

// expectedFinish estimates a finishing position from rating advantage:
// every 200 rating points above the field average shifts the expected
// percentile by 0.3.
func expectedFinish(playerRating, averageRating, totalParticipants int) int {
	strength := float64(playerRating-averageRating) / 200.0
	percentile := 0.5 + strength*0.3
	finish := int(math.Round((1 - percentile) * float64(totalParticipants)))
	if finish < 1 {
		return 1
	}
	if finish > totalParticipants {
		return totalParticipants
	}
	return finish
}
