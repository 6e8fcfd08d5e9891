// Package max6576 provides a driver for the MAX6576 temperature sensor, which
// reports absolute temperature as the period of a square wave.
//
// The driver times a fixed number of half periods against a millisecond tick
// accessor, so it needs no timer peripheral of its own.
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/MAX6576-MAX6577.pdf
package max6576

import (
	"errors"
	"runtime"
	"time"

	"github.com/harveysanders/picoperiph/oledperiph/systick"
)

// halfPeriods is the number of output edges timed per reading. Enough that a
// 1ms tick resolves about half a degree at the 10us/K scale.
const halfPeriods = 340

// kelvinOffset is 0°C in tenths of a kelvin.
const kelvinOffset = 2731

// ErrTimeout is returned when the output stops toggling.
var ErrTimeout = errors.New("max6576: no output edges before timeout")

// Scale is the period-per-kelvin selected by the TS1/TS0 pins.
type Scale uint8

const (
	Scale10us  Scale = iota // TS1=0, TS0=0
	Scale40us               // TS1=0, TS0=1
	Scale160us              // TS1=1, TS0=0
	Scale640us              // TS1=1, TS0=1
)

// multiplier is the period relative to the 10us/K scale.
func (s Scale) multiplier() int64 {
	return 1 << (2 * int64(s&0x3))
}

// Pin is the digital input wired to the sensor output. machine.Pin satisfies
// it.
type Pin interface {
	Get() bool
}

// Config holds sensor settings.
type Config struct {
	Scale Scale
	// Timeout bounds a whole reading. Zero picks one second per 10us/K of
	// scale, which covers the sensor's full range.
	Timeout time.Duration
}

// Device wraps the output pin of a MAX6576.
type Device struct {
	pin        Pin
	ticks      systick.Func
	multiplier int64
	timeoutMs  uint32
}

// New creates a MAX6576 reader. ticks must advance once per millisecond.
//
// This function only creates the Device object. Call Configure before reading.
func New(pin Pin, ticks systick.Func) *Device {
	return &Device{
		pin:        pin,
		ticks:      ticks,
		multiplier: 1,
		timeoutMs:  1000,
	}
}

// Configure applies cfg. It must match how the TS pins are strapped.
func (d *Device) Configure(cfg Config) {
	d.multiplier = cfg.Scale.multiplier()
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Duration(d.multiplier) * time.Second
	}
	d.timeoutMs = uint32(timeout / time.Millisecond)
}

// ReadTemperature returns the temperature in tenths of a degree Celsius. It
// blocks for the duration of the measurement (about half a second at room
// temperature on the 10us/K scale).
func (d *Device) ReadTemperature() (int32, error) {
	start := d.ticks()
	level := d.pin.Get()

	// Synchronise to an edge so timing starts on a whole half period.
	for d.pin.Get() == level {
		if d.ticks()-start > d.timeoutMs {
			return 0, ErrTimeout
		}
		runtime.Gosched()
	}
	level = !level

	t1 := d.ticks()
	for edges := 0; edges < halfPeriods; {
		if v := d.pin.Get(); v != level {
			level = v
			edges++
			continue
		}
		if d.ticks()-t1 > d.timeoutMs {
			return 0, ErrTimeout
		}
		// Let the tick writer run on single-core targets.
		runtime.Gosched()
	}
	elapsed := int64(d.ticks() - t1)

	return int32(2*1000*elapsed/(halfPeriods*d.multiplier)) - kelvinOffset, nil
}
