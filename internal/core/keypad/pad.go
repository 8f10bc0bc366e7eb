package keypad

import "tickpad/internal/core/model"

// Pad owns one digit buffer per edit target and tracks the active target.
// It is not safe for concurrent use; callers serialize access.
type Pad struct {
	target  EditTarget
	buffers [targetCount]Buffer
}

// NewPad returns a pad with empty buffers editing the combined field.
func NewPad() *Pad {
	pad := &Pad{}
	for target := TargetCombined; target < targetCount; target++ {
		pad.buffers[target] = newBuffer(target.Bound())
	}
	return pad
}

// Target returns the active edit target.
func (pad *Pad) Target() EditTarget {
	return pad.target
}

// Digits returns a copy of the buffered digits for target.
func (pad *Pad) Digits(target EditTarget) []int {
	if !target.Valid() {
		return nil
	}
	return pad.buffers[target].Digits()
}

// Append pushes a digit into the target buffer and returns the recomputed
// duration. Out-of-range digits and full buffers leave current unchanged.
func (pad *Pad) Append(target EditTarget, digit int, current model.Duration) (model.Duration, bool) {
	if !target.Valid() || digit < 0 || digit > 9 {
		return current, false
	}
	if !pad.buffers[target].Push(digit) {
		return current, false
	}
	return pad.recompute(target, current), true
}

// DeleteLast drops the last digit of the target buffer. Deleting from an empty
// hour, minute or second buffer switches back to the combined target instead.
func (pad *Pad) DeleteLast(target EditTarget, current model.Duration) (model.Duration, bool) {
	if !target.Valid() {
		return current, false
	}
	buffer := &pad.buffers[target]
	if target == TargetCombined {
		if !buffer.Pop() {
			// Nothing left to remove; the combined field reads as zero.
			return model.Duration{}, !current.IsZero()
		}
		return pad.recompute(target, current), true
	}
	if !buffer.Pop() {
		changed := pad.target != TargetCombined
		pad.target = TargetCombined
		return current, changed
	}
	return pad.recompute(target, current), true
}

// Select makes target the active edit target. For a field target the buffer is
// cleared when the field is zero, otherwise seeded with its current digits so
// typing continues after the existing value.
func (pad *Pad) Select(target EditTarget, current model.Duration) {
	if !target.Valid() {
		return
	}
	pad.target = target
	switch target {
	case TargetHour:
		pad.buffers[target].seed(current.Hour)
	case TargetMinute:
		pad.buffers[target].seed(current.Minute)
	case TargetSecond:
		pad.buffers[target].seed(current.Second)
	}
}

// Lock forces editing back to the combined target.
func (pad *Pad) Lock() {
	pad.target = TargetCombined
}

// Reset empties every buffer and returns to the combined target.
func (pad *Pad) Reset() {
	for index := range pad.buffers {
		pad.buffers[index].Clear()
	}
	pad.target = TargetCombined
}

func (pad *Pad) recompute(target EditTarget, current model.Duration) model.Duration {
	digits := pad.buffers[target].digits
	switch target {
	case TargetHour:
		current.Hour = ParseField(digits)
	case TargetMinute:
		current.Minute = ParseField(digits)
	case TargetSecond:
		current.Second = ParseField(digits)
	default:
		current = ParseCombined(digits)
	}
	return current
}
