package spa

// EventKind identifies a point-boosting special event.
type EventKind string

const (
	EventNone           EventKind = "none"
	EventDoublePoints   EventKind = "double_points"
	EventTriplePoints   EventKind = "triple_points"
	EventHappyHour      EventKind = "happy_hour"
	EventWeekendBonus   EventKind = "weekend_bonus"
	EventHolidaySpecial EventKind = "holiday_special"
)

// Multiplier scales a looked-up prize or reward. A zero-value Multiplier
// means no scaling.
type Multiplier struct {
	Factor float64
	Kind   EventKind
}

var eventFactors = map[EventKind]float64{
	EventDoublePoints:   2.0,
	EventTriplePoints:   3.0,
	EventHappyHour:      1.5,
	EventWeekendBonus:   1.25,
	EventHolidaySpecial: 2.5,
}

// EventMultiplier resolves the factor for a special event, scaled by an
// optional base multiplier. Unknown events resolve to a neutral factor.
func EventMultiplier(kind EventKind, base float64) Multiplier {
	if base == 0 {
		base = 1
	}
	factor, ok := eventFactors[kind]
	if !ok {
		return Multiplier{Factor: base, Kind: EventNone}
	}
	return Multiplier{Factor: factor * base, Kind: kind}
}
