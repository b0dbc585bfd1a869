package rank

// Eligibility is the entry requirement for a tournament category.
// MaxRating is nil when the category has no upper bound.
type Eligibility struct {
	MinRating    int
	MaxRating    *int
	RequiredTier string
	Description  string
}

func capped(max int) *int { return &max }

var eligibilityRules = map[string]Eligibility{
	Beginner: {
		MinRating:    800,
		MaxRating:    capped(1399),
		RequiredTier: "bronze or silver",
		Description:  "For new players learning the game",
	},
	Intermediate: {
		MinRating:    1200,
		MaxRating:    capped(1999),
		RequiredTier: "silver or gold",
		Description:  "For players with solid fundamentals",
	},
	Advanced: {
		MinRating:    1600,
		MaxRating:    capped(2599),
		RequiredTier: "gold or platinum",
		Description:  "For skilled competitive players",
	},
	Expert: {
		MinRating:    2000,
		MaxRating:    capped(2799),
		RequiredTier: "platinum or diamond",
		Description:  "For expert-level competitors",
	},
	MasterEvent: {
		MinRating:    2400,
		RequiredTier: "diamond or master",
		Description:  "For master and grandmaster players",
	},
	Elite: {
		MinRating:    2600,
		RequiredTier: "diamond or master",
		Description:  "Elite competition for top players",
	},
	Grandmaster: {
		MinRating:    2800,
		RequiredTier: "master",
		Description:  "Grandmaster-only events",
	},
	Open: {
		MinRating:    800,
		RequiredTier: "any",
		Description:  "Open to all skill levels",
	},
	Casual: {
		MinRating:    800,
		RequiredTier: "any",
		Description:  "Casual play for all players",
	},
}

// TournamentEligibility looks up the static entry requirements for a
// tournament category. Unknown categories resolve to the open ruleset
// rather than an error.
func TournamentEligibility(category string) Eligibility {
	if rule, ok := eligibilityRules[category]; ok {
		return rule
	}
	return eligibilityRules[Open]
}
