// Package light reads ambient illuminance from a BH1750 sensor.
package light

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bh1750"
)

// Range is the upper end of the measurement range in lux. The BH1750 has no
// range register, so each range picks the resolution mode that best covers
// it.
type Range uint8

const (
	Range1000 Range = iota
	Range4000
	Range16000
	Range64000
)

// mode maps r to a continuous BH1750 measurement mode. The narrow range
// uses the 0.5 lx mode, the widest trades resolution for a faster
// conversion.
func (r Range) mode() bh1750.SamplingMode {
	switch r {
	case Range1000:
		return bh1750.CONTINUOUS_HIGH_RES_MODE_2
	case Range64000:
		return bh1750.CONTINUOUS_LOW_RES_MODE
	default:
		return bh1750.CONTINUOUS_HIGH_RES_MODE
	}
}

func (r Range) String() string {
	switch r {
	case Range1000:
		return "1000lx"
	case Range4000:
		return "4000lx"
	case Range16000:
		return "16000lx"
	case Range64000:
		return "64000lx"
	}
	return "unknown"
}

// Sensor wraps a BH1750 on an I2C bus.
type Sensor struct {
	dev bh1750.Device
}

// New creates a light sensor. The I2C bus must already be configured.
// Call Enable before reading.
func New(bus drivers.I2C) *Sensor {
	return &Sensor{dev: bh1750.New(bus)}
}

// Enable powers the sensor up and starts continuous measurement.
func (s *Sensor) Enable() {
	s.dev.Configure()
}

// SetRange selects the measurement mode for r.
func (s *Sensor) SetRange(r Range) {
	s.dev.SetMode(r.mode())
}

// Illuminance returns the latest reading in lux.
func (s *Sensor) Illuminance() uint32 {
	return toLux(s.dev.Illuminance())
}

// toLux converts the driver's milli-lux to whole lux.
func toLux(mlx int32) uint32 {
	if mlx <= 0 {
		return 0
	}
	return uint32(mlx) / 1000
}
