package rank

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Code is one of the 12 ordered rank codes, K (weakest) through E+.
type Code string

const (
	K     Code = "K"
	KPlus Code = "K+"
	I     Code = "I"
	IPlus Code = "I+"
	H     Code = "H"
	HPlus Code = "H+"
	G     Code = "G"
	GPlus Code = "G+"
	F     Code = "F"
	FPlus Code = "F+"
	E     Code = "E"
	EPlus Code = "E+"
)

// Group is the coarse tier band a rank belongs to.
type Group string

const (
	Bronze   Group = "bronze"
	Silver   Group = "silver"
	Gold     Group = "gold"
	Platinum Group = "platinum"
	Diamond  Group = "diamond"
	Master   Group = "master"
)

// Tournament categories a tier may qualify for.
const (
	Casual       = "casual"
	Beginner     = "beginner"
	Open         = "open"
	Intermediate = "intermediate"
	Advanced     = "advanced"
	Expert       = "expert"
	MasterEvent  = "master"
	Elite        = "elite"
	Grandmaster  = "grandmaster"
)

// Tier is an immutable band of ratings with its gameplay privileges.
type Tier struct {
	Code                Code
	MinRating           int
	MaxRating           int
	Color               string
	Description         string
	KFactor             int
	Group               Group
	Division            int
	Qualifies           mapset.Set[string]
	CanCreateChallenges bool
	MaxChallengesPerDay int
	Features            mapset.Set[string]
}

func tierTable() []Tier {
	return []Tier{
		{
			Code: K, MinRating: 800, MaxRating: 999,
			Color: "gray", Description: "Beginner", KFactor: 40,
			Group: Bronze, Division: 1,
			Qualifies:           mapset.NewSet(Casual, Beginner),
			CanCreateChallenges: true, MaxChallengesPerDay: 5,
			Features: mapset.NewSet("basic_cues", "practice_mode"),
		},
		{
			Code: KPlus, MinRating: 1000, MaxRating: 1199,
			Color: "gray", Description: "Beginner+", KFactor: 40,
			Group: Bronze, Division: 2,
			Qualifies:           mapset.NewSet(Casual, Beginner, Open),
			CanCreateChallenges: true, MaxChallengesPerDay: 6,
			Features: mapset.NewSet("basic_cues", "practice_mode", "daily_challenges"),
		},
		{
			Code: I, MinRating: 1200, MaxRating: 1399,
			Color: "green", Description: "Intermediate", KFactor: 35,
			Group: Silver, Division: 1,
			Qualifies:           mapset.NewSet(Casual, Beginner, Open, Intermediate),
			CanCreateChallenges: true, MaxChallengesPerDay: 7,
			Features: mapset.NewSet("basic_cues", "practice_mode", "daily_challenges", "intermediate_cues"),
		},
		{
			Code: IPlus, MinRating: 1400, MaxRating: 1599,
			Color: "green", Description: "Intermediate+", KFactor: 35,
			Group: Silver, Division: 2,
			Qualifies:           mapset.NewSet(Casual, Beginner, Open, Intermediate),
			CanCreateChallenges: true, MaxChallengesPerDay: 8,
			Features: mapset.NewSet("basic_cues", "practice_mode", "daily_challenges", "intermediate_cues", "weekly_tournaments"),
		},
		{
			Code: H, MinRating: 1600, MaxRating: 1799,
			Color: "blue", Description: "Advanced", KFactor: 32,
			Group: Gold, Division: 1,
			Qualifies:           mapset.NewSet(Casual, Open, Intermediate, Advanced),
			CanCreateChallenges: true, MaxChallengesPerDay: 10,
			Features: mapset.NewSet("basic_cues", "practice_mode", "daily_challenges", "intermediate_cues", "weekly_tournaments", "advanced_cues"),
		},
		{
			Code: HPlus, MinRating: 1800, MaxRating: 1999,
			Color: "blue", Description: "Advanced+", KFactor: 32,
			Group: Gold, Division: 2,
			Qualifies:           mapset.NewSet(Casual, Open, Intermediate, Advanced),
			CanCreateChallenges: true, MaxChallengesPerDay: 12,
			Features: mapset.NewSet("basic_cues", "practice_mode", "daily_challenges", "intermediate_cues", "weekly_tournaments", "advanced_cues", "custom_tables"),
		},
		{
			Code: G, MinRating: 2000, MaxRating: 2199,
			Color: "orange", Description: "Expert", KFactor: 28,
			Group: Platinum, Division: 1,
			Qualifies:           mapset.NewSet(Open, Intermediate, Advanced, Expert),
			CanCreateChallenges: true, MaxChallengesPerDay: 15,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation"),
		},
		{
			Code: GPlus, MinRating: 2200, MaxRating: 2399,
			Color: "orange", Description: "Expert+", KFactor: 28,
			Group: Platinum, Division: 2,
			Qualifies:           mapset.NewSet(Open, Intermediate, Advanced, Expert),
			CanCreateChallenges: true, MaxChallengesPerDay: 18,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation", "mentorship_program"),
		},
		{
			Code: F, MinRating: 2400, MaxRating: 2599,
			Color: "red", Description: "Master", KFactor: 24,
			Group: Diamond, Division: 1,
			Qualifies:           mapset.NewSet(Advanced, Expert, MasterEvent, Elite),
			CanCreateChallenges: true, MaxChallengesPerDay: 20,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation", "mentorship_program", "master_cues"),
		},
		{
			Code: FPlus, MinRating: 2600, MaxRating: 2799,
			Color: "red", Description: "Master+", KFactor: 24,
			Group: Diamond, Division: 2,
			Qualifies:           mapset.NewSet(Advanced, Expert, MasterEvent, Elite),
			CanCreateChallenges: true, MaxChallengesPerDay: 25,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation", "mentorship_program", "master_cues", "exclusive_events"),
		},
		{
			Code: E, MinRating: 2800, MaxRating: 2999,
			Color: "purple", Description: "Grandmaster", KFactor: 20,
			Group: Master, Division: 1,
			Qualifies:           mapset.NewSet(Expert, MasterEvent, Elite, Grandmaster),
			CanCreateChallenges: true, MaxChallengesPerDay: 30,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation", "mentorship_program", "master_cues", "exclusive_events", "grandmaster_cues"),
		},
		{
			// Open-ended top band: ratings are clamped to 3000 upstream,
			// the 9999 bound only keeps the table well-formed.
			Code: EPlus, MinRating: 3000, MaxRating: 9999,
			Color: "purple", Description: "Grandmaster+", KFactor: 16,
			Group: Master, Division: 2,
			Qualifies:           mapset.NewSet(Expert, MasterEvent, Elite, Grandmaster),
			CanCreateChallenges: true, MaxChallengesPerDay: 50,
			Features: mapset.NewSet("all_cues", "all_tables", "expert_mode", "tournament_creation", "mentorship_program", "master_cues", "exclusive_events", "grandmaster_cues", "legendary_status"),
		},
	}
}

// Catalog is the validated, ordered tier table. Build one with NewCatalog
// at process start; a validation failure there is a configuration error,
// not something to recover from at runtime.
type Catalog struct {
	tiers []Tier
}

func NewCatalog() (*Catalog, error) {
	c := &Catalog{tiers: tierTable()}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate asserts the 12 ranges are contiguous and every tier carries its
// display metadata.
func (c *Catalog) Validate() error {
	if len(c.tiers) == 0 {
		return fmt.Errorf("rank: empty tier table")
	}
	for i := 0; i < len(c.tiers)-1; i++ {
		cur, next := c.tiers[i], c.tiers[i+1]
		if cur.MaxRating+1 != next.MinRating {
			return fmt.Errorf("rank: gap or overlap between %s and %s", cur.Code, next.Code)
		}
	}
	for _, tier := range c.tiers {
		if tier.Code == "" || tier.Description == "" || tier.Color == "" {
			return fmt.Errorf("rank: missing metadata for tier %q", tier.Code)
		}
	}
	return nil
}

// TierForRating finds the tier whose range contains rating. Ratings below
// the lowest floor fall back to the lowest tier; this should not happen
// when upstream clamping is in place.
func (c *Catalog) TierForRating(rating int) Tier {
	for _, tier := range c.tiers {
		if rating >= tier.MinRating && rating <= tier.MaxRating {
			return tier
		}
	}
	return c.tiers[0]
}

func (c *Catalog) TierForCode(code Code) (Tier, bool) {
	for _, tier := range c.tiers {
		if tier.Code == code {
			return tier, true
		}
	}
	return Tier{}, false
}

// Tiers returns a copy of the ordered table.
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

func (c *Catalog) TiersInGroup(group Group) []Tier {
	var out []Tier
	for _, tier := range c.tiers {
		if tier.Group == group {
			out = append(out, tier)
		}
	}
	return out
}

func (c *Catalog) indexOf(code Code) int {
	for i, tier := range c.tiers {
		if tier.Code == code {
			return i
		}
	}
	return -1
}

// Advisory privilege predicates. Enforcement belongs to the caller.

func (c *Catalog) QualifiesForTournament(rating int, category string) bool {
	return c.TierForRating(rating).Qualifies.Contains(category)
}

func (c *Catalog) CanCreateChallenges(rating int) bool {
	return c.TierForRating(rating).CanCreateChallenges
}

func (c *Catalog) MaxChallengesPerDay(rating int) int {
	return c.TierForRating(rating).MaxChallengesPerDay
}

func (c *Catalog) UnlockedFeatures(rating int) mapset.Set[string] {
	return c.TierForRating(rating).Features
}

func (c *Catalog) IsFeatureUnlocked(rating int, feature string) bool {
	return c.TierForRating(rating).Features.Contains(feature)
}
