package itoa

import (
	"bytes"
	"math"
	"strconv"
	"testing"
	"testing/quick"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		base     int
		capacity int
		want     string
	}{
		{"decimal", 123, 10, 10, "123"},
		{"negative decimal", -45, 10, 16, "-45"},
		{"zero fits capacity two", 0, 10, 2, "0"},
		{"binary", 5, 2, 36, "101"},
		{"hex", 255, 16, 10, "ff"},
		{"negative hex", -255, 16, 10, "-ff"},
		{"base 36", 35, 36, 10, "z"},
		{"exact fit with sign", -9, 10, 3, "-9"},
		{"min int32", math.MinInt32, 10, 16, "-2147483648"},
		{"min int64", math.MinInt64, 10, 24, "-9223372036854775808"},
		{"max int64 binary", math.MaxInt64, 2, 64, "111111111111111111111111111111111111111111111111111111111111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.capacity)
			n := Format(tt.value, buf, tt.capacity, tt.base)
			if got := string(buf[:n]); got != tt.want {
				t.Fatalf("Format(%d, base %d) = %q, want %q", tt.value, tt.base, got, tt.want)
			}
			if buf[n] != 0 {
				t.Errorf("expected terminator at %d, got %q", n, buf[n])
			}
		})
	}
}

func TestFormatNoOp(t *testing.T) {
	const sentinel = 0xAA
	tests := []struct {
		name     string
		value    int64
		base     int
		bufLen   int
		capacity int
	}{
		{"capacity zero", 1, 10, 8, 0},
		{"capacity one", 1, 10, 8, 1},
		{"nil buffer", 1, 10, 0, 2},
		{"capacity larger than buffer", 1, 10, 4, 8},
		{"base one", 1, 1, 8, 8},
		{"base zero", 1, 0, 8, 8},
		{"base 37", 1, 37, 8, 8},
		{"negative base", 1, -10, 8, 8},
		{"no room for terminator", 10, 10, 8, 2},
		{"no room for sign", -1, 10, 8, 2},
		{"long binary", 1024, 2, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf []byte
			if tt.bufLen > 0 {
				buf = bytes.Repeat([]byte{sentinel}, tt.bufLen)
			}
			if n := Format(tt.value, buf, tt.capacity, tt.base); n != 0 {
				t.Errorf("expected no-op, wrote %d bytes", n)
			}
			for i, b := range buf {
				if b != sentinel {
					t.Fatalf("buf[%d] modified: %#x", i, b)
				}
			}
		})
	}
}

func TestFormatZeroEveryBase(t *testing.T) {
	buf := make([]byte, 4)
	for base := 2; base <= MaxBase; base++ {
		n := Format(0, buf, len(buf), base)
		if got := string(buf[:n]); got != "0" {
			t.Errorf("base %d: got %q, want \"0\"", base, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	buf := make([]byte, 80)
	f := func(v int64, b uint8) bool {
		base := 2 + int(b)%(MaxBase-1)
		n := Format(v, buf, len(buf), base)
		if n == 0 {
			return false
		}
		got, err := strconv.ParseInt(string(buf[:n]), base, 64)
		return err == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFormatNegativeMirrorsPositive(t *testing.T) {
	pos := make([]byte, 80)
	neg := make([]byte, 80)
	f := func(v int64, b uint8) bool {
		if v == math.MinInt64 {
			return true
		}
		if v < 0 {
			v = -v
		}
		if v == 0 {
			return true
		}
		base := 2 + int(b)%(MaxBase-1)
		np := Format(v, pos, len(pos), base)
		nn := Format(-v, neg, len(neg), base)
		return nn == np+1 && neg[0] == '-' && bytes.Equal(neg[1:nn], pos[:np])
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFormatMatchesStrconv(t *testing.T) {
	buf := make([]byte, 80)
	values := []int64{1, -1, 7, 10, 36, -36, 1 << 31, -(1 << 40), math.MaxInt64}
	for _, v := range values {
		for base := 2; base <= MaxBase; base++ {
			n := Format(v, buf, len(buf), base)
			want := strconv.FormatInt(v, base)
			if got := string(buf[:n]); got != want {
				t.Errorf("Format(%d, base %d) = %q, want %q", v, base, got, want)
			}
			if l := Len(v, base); l != len(want) {
				t.Errorf("Len(%d, base %d) = %d, want %d", v, base, l, len(want))
			}
		}
	}
}

func TestFormatReusesBuffer(t *testing.T) {
	buf := make([]byte, 10)
	n := Format(123456, buf, len(buf), 10)
	if string(buf[:n]) != "123456" {
		t.Fatalf("got %q", buf[:n])
	}
	n = Format(7, buf, len(buf), 10)
	if string(buf[:n]) != "7" || buf[1] != 0 {
		t.Fatalf("got %q, terminator %#x", buf[:n], buf[1])
	}
}
