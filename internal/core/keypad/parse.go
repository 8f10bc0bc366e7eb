package keypad

import "tickpad/internal/core/model"

// ParseField interprets up to two digits as a single field value.
func ParseField(digits []int) int {
	switch len(digits) {
	case 0:
		return 0
	case 1:
		return digits[0]
	default:
		return pair(digits[0], digits[1])
	}
}

// ParseCombined fills seconds, then minutes, then hours from the right, like a
// calculator display. Sub-fields may exceed 59 until the duration is normalized.
func ParseCombined(digits []int) model.Duration {
	switch len(digits) {
	case 0:
		return model.Duration{}
	case 1, 2:
		return model.Duration{Second: ParseField(digits)}
	case 3:
		return model.Duration{
			Minute: digits[0],
			Second: pair(digits[1], digits[2]),
		}
	case 4:
		return model.Duration{
			Minute: pair(digits[0], digits[1]),
			Second: pair(digits[2], digits[3]),
		}
	case 5:
		return model.Duration{
			Hour:   digits[0],
			Minute: pair(digits[1], digits[2]),
			Second: pair(digits[3], digits[4]),
		}
	default:
		return model.Duration{
			Hour:   pair(digits[0], digits[1]),
			Minute: pair(digits[2], digits[3]),
			Second: pair(digits[4], digits[5]),
		}
	}
}

func pair(tens, ones int) int {
	return tens*10 + ones
}
