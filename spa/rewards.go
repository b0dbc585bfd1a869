package spa

// Reward is a redeemable catalog item. Redeeming one produces a
// redemption transaction handled by the caller.
type Reward struct {
	ID          string
	Name        string
	Description string
	Cost        int
	Category    string
	Available   bool
}

// AvailableRewards returns the redemption catalog.
func AvailableRewards() []Reward {
	return []Reward{
		{
			ID:          "premium_cue_1month",
			Name:        "Premium Cue (1 Month)",
			Description: "Unlock premium cue designs for 1 month",
			Cost:        5000,
			Category:    "cosmetic",
			Available:   true,
		},
		{
			ID:          "tournament_entry_fee_waiver",
			Name:        "Tournament Entry Fee Waiver",
			Description: "Free entry to next premium tournament",
			Cost:        2000,
			Category:    "gameplay",
			Available:   true,
		},
		{
			ID:          "custom_table_theme",
			Name:        "Custom Table Theme",
			Description: "Unlock custom table themes and felt colors",
			Cost:        3000,
			Category:    "cosmetic",
			Available:   true,
		},
		{
			ID:          "elo_boost_small",
			Name:        "Small ELO Boost",
			Description: "Gain 25 ELO points (usable once per month)",
			Cost:        8000,
			Category:    "gameplay",
			Available:   true,
		},
		{
			ID:          "challenge_skip",
			Name:        "Challenge Skip Token",
			Description: "Skip one daily challenge and still get rewards",
			Cost:        1000,
			Category:    "convenience",
			Available:   true,
		},
	}
}
