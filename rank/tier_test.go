package rank

import (
	"testing"
)

func TestNewCatalogValidates(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	if got := len(c.Tiers()); got != 12 {
		t.Fatalf("tier count = %d, want 12", got)
	}
}

func TestValidateDetectsMutation(t *testing.T) {
	// Shifting any boundary by one must break contiguity.
	for i := range tierTable() {
		for _, shift := range []int{-1, 1} {
			c := &Catalog{tiers: tierTable()}
			c.tiers[i].MaxRating += shift
			if i == len(c.tiers)-1 {
				// The open-ended top bound is not part of the
				// contiguity chain; mutate its floor instead.
				c.tiers[i].MinRating += shift
			}
			if err := c.Validate(); err == nil {
				t.Errorf("Validate() passed with tier %d max shifted by %d", i, shift)
			}
		}
	}
}

func TestValidateDetectsMissingMetadata(t *testing.T) {
	c := &Catalog{tiers: tierTable()}
	c.tiers[4].Description = ""
	if err := c.Validate(); err == nil {
		t.Error("Validate() passed with empty description")
	}

	c = &Catalog{tiers: tierTable()}
	c.tiers[7].Color = ""
	if err := c.Validate(); err == nil {
		t.Error("Validate() passed with empty color")
	}
}

func TestTierForRating(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		rating int
		want   Code
	}{
		{rating: 800, want: K},
		{rating: 999, want: K},
		{rating: 1000, want: KPlus},
		{rating: 1650, want: H},
		{rating: 1799, want: H},
		{rating: 1800, want: HPlus},
		{rating: 2400, want: F},
		{rating: 3000, want: EPlus},
		{rating: 3500, want: EPlus},
		// Defensive fallback below the table floor.
		{rating: 500, want: K},
	}
	for _, tt := range tests {
		if got := c.TierForRating(tt.rating); got.Code != tt.want {
			t.Errorf("TierForRating(%d) = %s, want %s", tt.rating, got.Code, tt.want)
		}
	}
}

func TestTierForCode(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	tier, ok := c.TierForCode(GPlus)
	if !ok || tier.MinRating != 2200 || tier.MaxRating != 2399 {
		t.Errorf("TierForCode(G+) = %+v, %v", tier, ok)
	}
	if _, ok := c.TierForCode("Z"); ok {
		t.Error("TierForCode accepted unknown code")
	}
}

func TestKFactorByTier(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	// K-factor decreases monotonically as tiers rise.
	prev := 1 << 30
	for _, tier := range c.Tiers() {
		if tier.KFactor > prev {
			t.Errorf("tier %s K-factor %d rises above previous %d", tier.Code, tier.KFactor, prev)
		}
		prev = tier.KFactor
	}
	if got := c.TierForRating(2500).KFactor; got != 24 {
		t.Errorf("K-factor at 2500 = %d, want 24", got)
	}
}

func TestPrivilegePredicates(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}

	if !c.QualifiesForTournament(900, Beginner) {
		t.Error("K rank should qualify for beginner tournaments")
	}
	if c.QualifiesForTournament(900, Expert) {
		t.Error("K rank must not qualify for expert tournaments")
	}
	if !c.QualifiesForTournament(2850, Grandmaster) {
		t.Error("E rank should qualify for grandmaster events")
	}

	if got := c.MaxChallengesPerDay(900); got != 5 {
		t.Errorf("MaxChallengesPerDay(900) = %d, want 5", got)
	}
	if got := c.MaxChallengesPerDay(3000); got != 50 {
		t.Errorf("MaxChallengesPerDay(3000) = %d, want 50", got)
	}
	if !c.CanCreateChallenges(800) {
		t.Error("every tier can create challenges")
	}

	if !c.IsFeatureUnlocked(1250, "daily_challenges") {
		t.Error("I rank should have daily challenges")
	}
	if c.IsFeatureUnlocked(1250, "tournament_creation") {
		t.Error("I rank must not have tournament creation")
	}
	if got := c.UnlockedFeatures(850).Cardinality(); got != 2 {
		t.Errorf("K rank features = %d, want 2", got)
	}
}

func TestTiersInGroup(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	gold := c.TiersInGroup(Gold)
	if len(gold) != 2 || gold[0].Code != H || gold[1].Code != HPlus {
		t.Errorf("TiersInGroup(Gold) = %v", gold)
	}
}
