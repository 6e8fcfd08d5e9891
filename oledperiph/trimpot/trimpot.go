// Package trimpot reads a trim potentiometer wired to an ADC channel.
package trimpot

// ADC is a single analog channel. TinyGo's machine.ADC satisfies it; Get
// returns a sample scaled to the full 16-bit range whatever the hardware
// resolution.
type ADC interface {
	Get() uint16
}

// Reader rescales 16-bit samples to Bits of resolution.
type Reader struct {
	ADC  ADC
	Bits uint8 // 1..16, defaults to 10 when zero.
}

// New returns a Reader producing 10-bit counts (0..1023).
func New(adc ADC) Reader {
	return Reader{ADC: adc, Bits: 10}
}

// Get returns the raw count at r.Bits resolution.
func (r Reader) Get() uint16 {
	bits := r.Bits
	if bits == 0 {
		bits = 10
	}
	if bits >= 16 {
		return r.ADC.Get()
	}
	return r.ADC.Get() >> (16 - bits)
}
