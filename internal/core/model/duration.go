package model

import "strconv"

// Duration is the hour/minute/second triple shown on the display.
type Duration struct {
	Hour   int
	Minute int
	Second int
}

// TotalSeconds returns the duration length in seconds.
func (duration Duration) TotalSeconds() int64 {
	return int64(duration.Hour)*3600 + int64(duration.Minute)*60 + int64(duration.Second)
}

// IsZero reports whether the duration totals to zero seconds.
func (duration Duration) IsZero() bool {
	return duration.TotalSeconds() == 0
}

// Normalize carries seconds above 59 into minutes and minutes above 59 into hours.
func (duration Duration) Normalize() Duration {
	if duration.Second >= 60 {
		duration.Minute += duration.Second / 60
		duration.Second %= 60
	}
	if duration.Minute >= 60 {
		duration.Hour += duration.Minute / 60
		duration.Minute %= 60
	}
	return duration
}

// FromMillis splits a millisecond count into whole hours, minutes and seconds.
func FromMillis(millis int64) Duration {
	if millis < 0 {
		millis = 0
	}
	totalSeconds := millis / 1000
	return Duration{
		Hour:   int(totalSeconds / 3600),
		Minute: int((totalSeconds / 60) % 60),
		Second: int(totalSeconds % 60),
	}
}

// String renders the duration as HH:MM:SS.
func (duration Duration) String() string {
	return FormatTwoDigits(duration.Hour) + ":" + FormatTwoDigits(duration.Minute) + ":" + FormatTwoDigits(duration.Second)
}

// FormatTwoDigits zero-pads single digit values. Wider values are not truncated.
func FormatTwoDigits(value int) string {
	if value >= 0 && value < 10 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}
