// Package itoa renders integers as text into caller-owned buffers without
// allocating, so it can run in the display loop without touching the heap.
package itoa

// digits is the alphabet for bases 2 through 36.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest base Format accepts.
const MaxBase = len(digits)

// Format writes the base-base text of value into buf, followed by a NUL
// terminator, and returns the number of text bytes written (terminator
// excluded). Callers render buf[:n].
//
// capacity is the number of bytes of buf the caller allows Format to use. The
// text plus sign plus terminator must fit in it. Format writes nothing and
// returns 0 when capacity is under 2 or larger than len(buf), when base is
// outside [2, 36], or when the text would not fit.
func Format(value int64, buf []byte, capacity, base int) int {
	// Room for one digit and the terminator.
	if capacity < 2 || capacity > len(buf) {
		return 0
	}
	if base < 2 || base > MaxBase {
		return 0
	}

	n := Len(value, base)
	if n+1 > capacity {
		return 0
	}

	mag := magnitude(value)
	b := uint64(base)

	buf[n] = 0
	pos := n
	for {
		pos--
		buf[pos] = digits[mag%b]
		mag /= b
		if mag == 0 {
			break
		}
	}
	if value < 0 {
		buf[0] = '-'
	}
	return n
}

// Len returns the number of text bytes Format would write for value in base,
// or 0 if base is out of range.
func Len(value int64, base int) int {
	if base < 2 || base > MaxBase {
		return 0
	}
	n := 0
	if value < 0 {
		n++
	}
	mag := magnitude(value)
	for {
		n++
		mag /= uint64(base)
		if mag == 0 {
			return n
		}
	}
}

// magnitude returns |v| in uint64 so the most negative int64 does not
// overflow on negation.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
