package spa

import "fmt"

// Periodic activity bonuses. Each gate returns nil below its minimum
// activity threshold; callers treat nil as "no bonus earned", not an
// error.

const (
	dailyMinMatches = 3

	weeklyMinDaysActive = 5
	weeklyMinMatches    = 15

	monthlyMinDaysActive = 20
	monthlyMinMatches    = 100
)

// DailyBonus awards the daily activity bonus once at least three matches
// were played, with extra line items per tournament and challenge.
func DailyBonus(matchesPlayed, tournamentsParticipated, challengesCompleted int, cfg Config) *Transaction {
	if matchesPlayed < dailyMinMatches {
		return nil
	}

	points := cfg.DailyActivityBonus
	var bonuses []Bonus

	if tournamentsParticipated > 0 {
		amount := tournamentsParticipated * 25
		points += amount
		bonuses = append(bonuses, Bonus{
			Type:        "tournament_participation_bonus",
			Amount:      amount,
			Description: fmt.Sprintf("Tournament participation bonus (%d tournaments)", tournamentsParticipated),
		})
	}

	if challengesCompleted > 0 {
		amount := challengesCompleted * 15
		points += amount
		bonuses = append(bonuses, Bonus{
			Type:        "challenge_completion_bonus",
			Amount:      amount,
			Description: fmt.Sprintf("Challenge completion bonus (%d challenges)", challengesCompleted),
		})
	}

	return &Transaction{
		Activity:    ActivityDaily,
		BasePoints:  cfg.DailyActivityBonus,
		BonusPoints: points - cfg.DailyActivityBonus,
		TotalPoints: points,
		Bonuses:     bonuses,
	}
}

// WeeklyBonus requires five active days and fifteen matches. High volume,
// tournament dedication and a perfect seven-day week stack on top.
func WeeklyBonus(totalMatches, totalTournaments, totalChallenges, daysActive int, cfg Config) *Transaction {
	if daysActive < weeklyMinDaysActive || totalMatches < weeklyMinMatches {
		return nil
	}

	points := cfg.WeeklyActivityBonus
	var bonuses []Bonus

	if totalMatches >= 50 {
		points += 300
		bonuses = append(bonuses, Bonus{
			Type:        "high_activity_bonus",
			Amount:      300,
			Description: "High activity bonus (50+ matches)",
		})
	}

	if totalTournaments >= 3 {
		points += 150
		bonuses = append(bonuses, Bonus{
			Type:        "tournament_dedication_bonus",
			Amount:      150,
			Description: "Tournament dedication bonus (3+ tournaments)",
		})
	}

	if daysActive == 7 {
		points += 200
		bonuses = append(bonuses, Bonus{
			Type:        "perfect_week_bonus",
			Amount:      200,
			Description: "Perfect week bonus (7 days active)",
		})
	}

	return &Transaction{
		Activity:    ActivityWeekly,
		BasePoints:  cfg.WeeklyActivityBonus,
		BonusPoints: points - cfg.WeeklyActivityBonus,
		TotalPoints: points,
		Bonuses:     bonuses,
	}
}

// MonthlyBonus requires twenty active days and a hundred matches.
// monthDays is the calendar length of the month being scored; full
// attendance earns the perfect month line.
func MonthlyBonus(totalMatches, totalTournaments, totalChallenges, daysActive, monthDays int, cfg Config) *Transaction {
	if daysActive < monthlyMinDaysActive || totalMatches < monthlyMinMatches {
		return nil
	}

	points := cfg.MonthlyActivityBonus
	var bonuses []Bonus

	if totalMatches >= 200 {
		points += 500
		bonuses = append(bonuses, Bonus{
			Type:        "monthly_high_activity_bonus",
			Amount:      500,
			Description: "Monthly high activity bonus (200+ matches)",
		})
	}

	if totalTournaments >= 10 {
		points += 400
		bonuses = append(bonuses, Bonus{
			Type:        "tournament_master_bonus",
			Amount:      400,
			Description: "Tournament master bonus (10+ tournaments)",
		})
	}

	if daysActive == monthDays {
		points += 1000
		bonuses = append(bonuses, Bonus{
			Type:        "perfect_month_bonus",
			Amount:      1000,
			Description: "Perfect month bonus (every day active)",
		})
	}

	return &Transaction{
		Activity:    ActivityMonthly,
		BasePoints:  cfg.MonthlyActivityBonus,
		BonusPoints: points - cfg.MonthlyActivityBonus,
		TotalPoints: points,
		Bonuses:     bonuses,
	}
}
