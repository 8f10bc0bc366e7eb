package keypad

// EditTarget identifies which display field receives typed digits.
type EditTarget int

const (
	TargetCombined EditTarget = iota
	TargetHour
	TargetMinute
	TargetSecond

	targetCount
)

const (
	combinedBound = 6
	fieldBound    = 2
)

// Bound returns the maximum number of digits buffered for the target.
func (target EditTarget) Bound() int {
	if target == TargetCombined {
		return combinedBound
	}
	return fieldBound
}

// Valid reports whether target is one of the known edit targets.
func (target EditTarget) Valid() bool {
	return target >= TargetCombined && target < targetCount
}

func (target EditTarget) String() string {
	switch target {
	case TargetCombined:
		return "combined"
	case TargetHour:
		return "hour"
	case TargetMinute:
		return "minute"
	case TargetSecond:
		return "second"
	default:
		return "unknown"
	}
}
