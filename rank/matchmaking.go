package rank

// MatchmakingWindow returns the tiers an external matchmaker may pair this
// rating against: the player's own tier, or the player's tier plus one
// below and one above when cross-tier play is allowed, clipped at the
// table boundaries.
func (c *Catalog) MatchmakingWindow(rating int, allowCrossTier bool) []Tier {
	tier := c.TierForRating(rating)
	idx := c.indexOf(tier.Code)

	if !allowCrossTier {
		return []Tier{tier}
	}

	lo := idx - 1
	if lo < 0 {
		lo = 0
	}
	hi := idx + 1
	if hi > len(c.tiers)-1 {
		hi = len(c.tiers) - 1
	}

	out := make([]Tier, hi-lo+1)
	copy(out, c.tiers[lo:hi+1])
	return out
}

// MatchupQuality buckets a rating gap for matchmaking purposes.
type MatchupQuality string

const (
	MatchupExcellent MatchupQuality = "excellent"
	MatchupGood      MatchupQuality = "good"
	MatchupFair      MatchupQuality = "fair"
	MatchupPoor      MatchupQuality = "poor"
)

type Gap struct {
	Gap                 int
	TierDifference      int
	MajorUpsetPotential bool
	Quality             MatchupQuality
}

// SkillGap classifies how well two ratings match up. Gaps over 300 carry
// major upset potential.
func (c *Catalog) SkillGap(ra, rb int) Gap {
	gap := ra - rb
	if gap < 0 {
		gap = -gap
	}

	idxA := c.indexOf(c.TierForRating(ra).Code)
	idxB := c.indexOf(c.TierForRating(rb).Code)
	tierDiff := idxA - idxB
	if tierDiff < 0 {
		tierDiff = -tierDiff
	}

	var quality MatchupQuality
	switch {
	case gap <= 50:
		quality = MatchupExcellent
	case gap <= 150:
		quality = MatchupGood
	case gap <= 300:
		quality = MatchupFair
	default:
		quality = MatchupPoor
	}

	return Gap{
		Gap:                 gap,
		TierDifference:      tierDiff,
		MajorUpsetPotential: gap > 300,
		Quality:             quality,
	}
}
