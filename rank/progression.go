package rank

import "math"

// Progression describes where a rating sits inside its tier. Next is nil
// at the top tier.
type Progression struct {
	Current         Code
	CurrentRating   int
	Next            *Code
	PointsToNext    int
	ProgressPercent int
}

// Progression reports the player's position within the current tier span
// as 0-100. The top tier always reads 100 with no next rank.
func (c *Catalog) Progression(rating int) Progression {
	current := c.TierForRating(rating)
	idx := c.indexOf(current.Code)

	if idx == len(c.tiers)-1 {
		return Progression{
			Current:         current.Code,
			CurrentRating:   rating,
			Next:            nil,
			PointsToNext:    0,
			ProgressPercent: 100,
		}
	}

	next := c.tiers[idx+1]
	span := current.MaxRating - current.MinRating
	progress := float64(rating-current.MinRating) / float64(span) * 100
	progress = math.Max(0, math.Min(100, progress))

	pointsToNext := next.MinRating - rating
	if pointsToNext < 0 {
		pointsToNext = 0
	}

	nextCode := next.Code
	return Progression{
		Current:         current.Code,
		CurrentRating:   rating,
		Next:            &nextCode,
		PointsToNext:    pointsToNext,
		ProgressPercent: int(math.Round(progress)),
	}
}

// Stability classifies how secure a player's hold on their rank is.
type Stability string

const (
	StabilityRising  Stability = "rising"
	StabilityStable  Stability = "stable"
	StabilityFalling Stability = "falling"
)

// Outlook is the promotion-oriented view of progression.
type Outlook struct {
	Current           Code
	CurrentRating     int
	Next              *Code
	RequiredRating    *int
	RatingNeeded      *int
	PromotionEligible bool
	Stability         Stability
}

// PromotionOutlook reports promotion eligibility and rank stability for a
// player holding the given rank. The rank is the stored one, not derived
// from the rating: a rating that has grown past the held rank's band is
// exactly what makes a player eligible. An unknown code falls back to the
// rating's own tier. A player sitting less than 50 points above their
// rank's floor is considered falling.
func (c *Catalog) PromotionOutlook(held Code, rating int) Outlook {
	current, ok := c.TierForCode(held)
	if !ok {
		current = c.TierForRating(rating)
	}
	idx := c.indexOf(current.Code)

	out := Outlook{
		Current:       current.Code,
		CurrentRating: rating,
	}

	if idx < len(c.tiers)-1 {
		next := c.tiers[idx+1]
		nextCode := next.Code
		required := next.MinRating
		needed := required - rating
		if needed < 0 {
			needed = 0
		}
		out.Next = &nextCode
		out.RequiredRating = &required
		out.RatingNeeded = &needed
		out.PromotionEligible = rating >= required
	}

	switch {
	case out.PromotionEligible:
		out.Stability = StabilityRising
	case rating-current.MinRating < 50:
		out.Stability = StabilityFalling
	default:
		out.Stability = StabilityStable
	}
	return out
}
