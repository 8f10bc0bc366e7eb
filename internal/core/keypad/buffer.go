package keypad

// Buffer is a bounded sequence of typed digits for one edit target.
type Buffer struct {
	digits []int
	bound  int
}

func newBuffer(bound int) Buffer {
	return Buffer{digits: make([]int, 0, bound), bound: bound}
}

// Len returns the number of buffered digits.
func (buffer *Buffer) Len() int {
	return len(buffer.digits)
}

// Full reports whether another digit would be dropped.
func (buffer *Buffer) Full() bool {
	return len(buffer.digits) >= buffer.bound
}

// Digits returns a copy of the buffered digits.
func (buffer *Buffer) Digits() []int {
	return append([]int(nil), buffer.digits...)
}

// Push appends a digit. Digits beyond the bound are discarded.
func (buffer *Buffer) Push(digit int) bool {
	if buffer.Full() {
		return false
	}
	buffer.digits = append(buffer.digits, digit)
	return true
}

// Pop drops the last digit.
func (buffer *Buffer) Pop() bool {
	if len(buffer.digits) == 0 {
		return false
	}
	buffer.digits = buffer.digits[:len(buffer.digits)-1]
	return true
}

// Clear empties the buffer.
func (buffer *Buffer) Clear() {
	buffer.digits = buffer.digits[:0]
}

func (buffer *Buffer) seed(value int) {
	buffer.Clear()
	if value <= 0 {
		return
	}
	var reversed []int
	for value > 0 {
		reversed = append(reversed, value%10)
		value /= 10
	}
	// Keep the trailing digits when the value is wider than the bound.
	if len(reversed) > buffer.bound {
		reversed = reversed[:buffer.bound]
	}
	for index := len(reversed) - 1; index >= 0; index-- {
		buffer.digits = append(buffer.digits, reversed[index])
	}
}
