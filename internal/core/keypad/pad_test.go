package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpad/internal/core/model"
)

func typeDigits(pad *Pad, target EditTarget, current model.Duration, digits ...int) model.Duration {
	for _, digit := range digits {
		current, _ = pad.Append(target, digit, current)
	}
	return current
}

func TestParseField(t *testing.T) {
	assert.Equal(t, 0, ParseField(nil))
	for tens := 0; tens <= 9; tens++ {
		assert.Equal(t, tens, ParseField([]int{tens}))
		for ones := 0; ones <= 9; ones++ {
			assert.Equal(t, tens*10+ones, ParseField([]int{tens, ones}))
		}
	}
}

func TestParseCombined(t *testing.T) {
	cases := []struct {
		digits   []int
		expected model.Duration
	}{
		{nil, model.Duration{}},
		{[]int{7}, model.Duration{Second: 7}},
		{[]int{4, 5}, model.Duration{Second: 45}},
		{[]int{1, 2, 3}, model.Duration{Minute: 1, Second: 23}},
		{[]int{1, 2, 3, 4}, model.Duration{Minute: 12, Second: 34}},
		{[]int{1, 2, 3, 4, 5}, model.Duration{Hour: 1, Minute: 23, Second: 45}},
		{[]int{1, 2, 3, 4, 5, 6}, model.Duration{Hour: 12, Minute: 34, Second: 56}},
		{[]int{9, 9, 9, 9}, model.Duration{Minute: 99, Second: 99}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseCombined(tc.digits), "digits %v", tc.digits)
	}
}

func TestCombinedEntryFillsFromRight(t *testing.T) {
	pad := NewPad()
	current := typeDigits(pad, TargetCombined, model.Duration{}, 1, 2, 3)
	assert.Equal(t, model.Duration{Minute: 1, Second: 23}, current)

	current = typeDigits(pad, TargetCombined, current, 4)
	assert.Equal(t, model.Duration{Minute: 12, Second: 34}, current)
}

func TestAppendBeyondBoundIsDropped(t *testing.T) {
	pad := NewPad()
	current := typeDigits(pad, TargetCombined, model.Duration{}, 1, 2, 3, 4, 5, 6)
	require.Equal(t, model.Duration{Hour: 12, Minute: 34, Second: 56}, current)

	next, changed := pad.Append(TargetCombined, 7, current)
	assert.False(t, changed)
	assert.Equal(t, current, next)
	assert.Len(t, pad.Digits(TargetCombined), 6)

	pad.Select(TargetMinute, model.Duration{})
	current = typeDigits(pad, TargetMinute, model.Duration{}, 4, 5, 6)
	assert.Equal(t, 45, current.Minute)
	assert.Equal(t, []int{4, 5}, pad.Digits(TargetMinute))
}

func TestAppendRejectsNonDigits(t *testing.T) {
	pad := NewPad()
	for _, digit := range []int{-1, 10, 42} {
		next, changed := pad.Append(TargetCombined, digit, model.Duration{})
		assert.False(t, changed)
		assert.Equal(t, model.Duration{}, next)
	}
	assert.Empty(t, pad.Digits(TargetCombined))

	_, changed := pad.Append(EditTarget(99), 1, model.Duration{})
	assert.False(t, changed)
}

func TestFieldEntryOnlyTouchesItsField(t *testing.T) {
	pad := NewPad()
	start := model.Duration{Hour: 1, Minute: 2, Second: 3}
	pad.Select(TargetSecond, model.Duration{})

	current := typeDigits(pad, TargetSecond, start, 4)
	assert.Equal(t, model.Duration{Hour: 1, Minute: 2, Second: 4}, current)

	current = typeDigits(pad, TargetSecond, current, 5)
	assert.Equal(t, model.Duration{Hour: 1, Minute: 2, Second: 45}, current)

	current, changed := pad.DeleteLast(TargetSecond, current)
	assert.True(t, changed)
	assert.Equal(t, model.Duration{Hour: 1, Minute: 2, Second: 4}, current)

	current, _ = pad.DeleteLast(TargetSecond, current)
	assert.Equal(t, model.Duration{Hour: 1, Minute: 2, Second: 0}, current)
}

func TestDeleteOnEmptyFieldBacksOutToCombined(t *testing.T) {
	pad := NewPad()
	start := model.Duration{Minute: 5, Second: 30}
	pad.Select(TargetHour, start)
	require.Equal(t, TargetHour, pad.Target())
	require.Empty(t, pad.Digits(TargetHour))

	current, changed := pad.DeleteLast(TargetHour, start)
	assert.True(t, changed)
	assert.Equal(t, start, current)
	assert.Equal(t, TargetCombined, pad.Target())
}

func TestDeleteOnCombined(t *testing.T) {
	pad := NewPad()
	current := typeDigits(pad, TargetCombined, model.Duration{}, 1, 2, 3)

	current, changed := pad.DeleteLast(TargetCombined, current)
	assert.True(t, changed)
	assert.Equal(t, model.Duration{Second: 12}, current)

	current, _ = pad.DeleteLast(TargetCombined, current)
	current, _ = pad.DeleteLast(TargetCombined, current)
	assert.Equal(t, model.Duration{}, current)

	current, changed = pad.DeleteLast(TargetCombined, current)
	assert.False(t, changed)
	assert.Equal(t, model.Duration{}, current)
	assert.Equal(t, TargetCombined, pad.Target())
}

func TestDeleteOnEmptyCombinedZeroesFieldEdits(t *testing.T) {
	pad := NewPad()
	current, changed := pad.DeleteLast(TargetCombined, model.Duration{Hour: 2})
	assert.True(t, changed)
	assert.Equal(t, model.Duration{}, current)
}

func TestSelectSeedsExistingValue(t *testing.T) {
	pad := NewPad()
	current := model.Duration{Hour: 0, Minute: 7, Second: 42}

	pad.Select(TargetMinute, current)
	assert.Equal(t, TargetMinute, pad.Target())
	assert.Equal(t, []int{7}, pad.Digits(TargetMinute))

	current = typeDigits(pad, TargetMinute, current, 3)
	assert.Equal(t, 73, current.Minute)

	pad.Select(TargetSecond, current)
	assert.Equal(t, []int{4, 2}, pad.Digits(TargetSecond))
	next, changed := pad.Append(TargetSecond, 1, current)
	assert.False(t, changed)
	assert.Equal(t, current, next)

	pad.Select(TargetHour, current)
	assert.Empty(t, pad.Digits(TargetHour))
}

func TestSelectWideValueKeepsTrailingDigits(t *testing.T) {
	pad := NewPad()
	pad.Select(TargetHour, model.Duration{Hour: 123})
	assert.Equal(t, []int{2, 3}, pad.Digits(TargetHour))
}

func TestSelectCombinedLeavesBuffer(t *testing.T) {
	pad := NewPad()
	typeDigits(pad, TargetCombined, model.Duration{}, 1, 2)
	pad.Select(TargetSecond, model.Duration{Second: 12})
	pad.Select(TargetCombined, model.Duration{Second: 12})
	assert.Equal(t, TargetCombined, pad.Target())
	assert.Equal(t, []int{1, 2}, pad.Digits(TargetCombined))
}

func TestReset(t *testing.T) {
	pad := NewPad()
	current := typeDigits(pad, TargetCombined, model.Duration{}, 1, 2)
	pad.Select(TargetMinute, current)
	typeDigits(pad, TargetMinute, current, 5)

	pad.Reset()
	assert.Equal(t, TargetCombined, pad.Target())
	for target := TargetCombined; target < targetCount; target++ {
		assert.Empty(t, pad.Digits(target), target.String())
	}
}

func TestEditTargetBound(t *testing.T) {
	assert.Equal(t, 6, TargetCombined.Bound())
	assert.Equal(t, 2, TargetHour.Bound())
	assert.Equal(t, 2, TargetMinute.Bound())
	assert.Equal(t, 2, TargetSecond.Bound())
	assert.Equal(t, "unknown", EditTarget(-1).String())
	assert.False(t, EditTarget(-1).Valid())
}
