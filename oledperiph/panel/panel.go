// Package panel runs the sensor display loop: read each sensor, render its
// value on the OLED, and let the joystick switch the temperature unit.
package panel

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/harveysanders/picoperiph/oledperiph/itoa"
	"github.com/harveysanders/picoperiph/oledperiph/joystick"
)

// Screen layout. Labels are nine 6px columns wide, values start after them.
const (
	labelX  int16 = 1
	valueX  int16 = 1 + 9*6
	valueW  int16 = 80 - valueX + 1
	rowH    int16 = 8
	tempY   int16 = 1
	lightY  int16 = 9
	trimY   int16 = 17
	statusY int16 = 55
	statusW int16 = 6 * 6
)

var (
	labelTempC   = []byte("Temp C : ")
	labelTempF   = []byte("Temp F : ")
	labelLight   = []byte("Light  : ")
	labelTrimpot = []byte("Trimpot: ")
	textLow      = []byte("low")
	textHigh     = []byte("high")
	textUp       = []byte("up")
	textDown     = []byte("down")
)

// Unit is the temperature unit shown on screen.
type Unit uint8

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) String() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// TrimpotPolicy selects how the trimpot row is rendered.
type TrimpotPolicy uint8

const (
	// TrimpotLabels shows "low" below the threshold and "high" otherwise.
	TrimpotLabels TrimpotPolicy = iota
	// TrimpotNumeric shows the raw ADC count.
	TrimpotNumeric
)

func (p TrimpotPolicy) String() string {
	if p == TrimpotNumeric {
		return "numeric"
	}
	return "labels"
}

// ErrUnknownPolicy is returned by ParseTrimpotPolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown trimpot policy")

// ParseTrimpotPolicy parses "labels" or "numeric". An empty string selects
// TrimpotLabels.
func ParseTrimpotPolicy(s string) (TrimpotPolicy, error) {
	switch s {
	case "", "labels":
		return TrimpotLabels, nil
	case "numeric":
		return TrimpotNumeric, nil
	}
	return TrimpotLabels, errors.New(ErrUnknownPolicy.Error() + ": " + s)
}

// Display is the drawing surface. oled.Screen satisfies it.
type Display interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int16, c color.RGBA)
	PutString(x, y int16, s []byte, fg, bg color.RGBA)
	Display() error
}

// Thermometer returns temperature in tenths of a degree Celsius.
type Thermometer interface {
	ReadTemperature() (int32, error)
}

// LightSensor returns illuminance in lux.
type LightSensor interface {
	Illuminance() uint32
}

// ADC returns a raw potentiometer count.
type ADC interface {
	Get() uint16
}

// Joystick returns the pressed directions.
type Joystick interface {
	Read() joystick.State
}

// LED is an optional heartbeat output. machine.Pin satisfies it.
type LED interface {
	Set(high bool)
}

// Devices are the already initialised collaborators the loop polls.
type Devices struct {
	Display     Display
	Thermometer Thermometer
	Light       LightSensor
	Trimpot     ADC
	Joystick    Joystick
	LED         LED                 // Optional.
	Sleep       func(time.Duration) // Defaults to time.Sleep.
}

// Config controls the loop.
type Config struct {
	Delay            time.Duration // Pause at the end of each iteration.
	Unit             Unit          // Initial temperature unit.
	Trimpot          TrimpotPolicy
	TrimpotThreshold uint16 // Counts below this render as "low".
	Foreground       color.RGBA
	Background       color.RGBA
}

// DefaultConfig returns the stock settings: 200ms pacing, Celsius, labelled
// trimpot with a threshold of 700, black text on white.
func DefaultConfig() Config {
	return Config{
		Delay:            200 * time.Millisecond,
		Unit:             Celsius,
		Trimpot:          TrimpotLabels,
		TrimpotThreshold: 700,
		Foreground:       color.RGBA{0, 0, 0, 255},
		Background:       color.RGBA{255, 255, 255, 255},
	}
}

// Panel is the polling loop state.
type Panel struct {
	cfg    Config
	dev    Devices
	logger *slog.Logger
	unit   Unit
	led    bool
	// buf is reused for every formatted value.
	buf [10]byte
}

// New creates a Panel. All Devices except LED and Sleep are required.
func New(cfg Config, dev Devices, logger *slog.Logger) *Panel {
	if dev.Sleep == nil {
		dev.Sleep = time.Sleep
	}
	return &Panel{
		cfg:    cfg,
		dev:    dev,
		logger: logger,
		unit:   cfg.Unit,
	}
}

// Unit returns the temperature unit currently displayed.
func (p *Panel) Unit() Unit {
	return p.unit
}

// Setup clears the screen and draws the static labels.
func (p *Panel) Setup() {
	p.dev.Display.Clear(p.cfg.Background)
	p.putString(labelX, lightY, labelLight)
	p.putString(labelX, trimY, labelTrimpot)
	p.flush()
}

// Run calls Step forever.
func (p *Panel) Run() {
	p.logger.Info("panel:running",
		slog.String("unit", p.unit.String()),
		slog.String("trimpot", p.cfg.Trimpot.String()),
	)
	for {
		p.Step()
	}
}

// Step runs one iteration and reports whether it waited out the pacing
// delay. A centre press ends the iteration early without waiting.
func (p *Panel) Step() bool {
	label := labelTempC
	if p.unit == Fahrenheit {
		label = labelTempF
	}
	p.putString(labelX, tempY, label)

	raw, err := p.dev.Thermometer.ReadTemperature()
	if err != nil {
		p.logger.Warn("panel:temperature", slog.Any("reason", err))
	}
	t := DisplayTemperature(raw, p.unit)
	lux := p.dev.Light.Illuminance()
	trim := p.dev.Trimpot.Get()

	p.putValue(tempY, int64(t))
	p.putValue(lightY, int64(lux))
	switch {
	case p.cfg.Trimpot == TrimpotNumeric:
		p.putValue(trimY, int64(trim))
	case trim < p.cfg.TrimpotThreshold:
		p.putText(trimY, textLow)
	default:
		p.putText(trimY, textHigh)
	}
	p.flush()

	joy := p.dev.Joystick.Read()
	if joy.Has(joystick.Center) {
		return false
	}
	p.handleJoystick(joy)

	if p.dev.LED != nil {
		p.led = !p.led
		p.dev.LED.Set(p.led)
	}
	p.dev.Sleep(p.cfg.Delay)
	return true
}

// handleJoystick draws the up/down status and applies left/right unit
// changes. Right wins when both are pressed.
func (p *Panel) handleJoystick(joy joystick.State) {
	var status []byte
	if joy.Has(joystick.Down) {
		status = textDown
	}
	if joy.Has(joystick.Up) {
		status = textUp
	}
	if status != nil {
		p.dev.Display.FillRect(labelX, statusY, statusW, rowH, p.cfg.Background)
		p.putString(labelX, statusY, status)
		p.flush()
	}

	unit := p.unit
	if joy.Has(joystick.Left) {
		unit = Celsius
	}
	if joy.Has(joystick.Right) {
		unit = Fahrenheit
	}
	if unit != p.unit {
		p.logger.Info("panel:unit", slog.String("unit", unit.String()))
		p.unit = unit
	}
}

// DisplayTemperature converts tenths of a degree Celsius to whole degrees in
// unit, truncating toward zero.
func DisplayTemperature(tenthsC int32, unit Unit) int32 {
	if unit == Fahrenheit {
		// Scale to hundredths first so only the final division truncates.
		return int32((int64(tenthsC)*18 + 3200) / 100)
	}
	return tenthsC / 10
}

// putValue formats v into the shared buffer and draws it in row y. If v does
// not fit, the buffer keeps its previous text and that is drawn instead.
func (p *Panel) putValue(y int16, v int64) {
	n := itoa.Format(v, p.buf[:], len(p.buf), 10)
	if n == 0 {
		n = bytes.IndexByte(p.buf[:], 0)
		if n < 0 {
			n = len(p.buf)
		}
	}
	p.putText(y, p.buf[:n])
}

// putText clears the value cell of row y and draws s.
func (p *Panel) putText(y int16, s []byte) {
	p.dev.Display.FillRect(valueX, y, valueW, rowH, p.cfg.Background)
	p.putString(valueX, y, s)
}

func (p *Panel) putString(x, y int16, s []byte) {
	p.dev.Display.PutString(x, y, s, p.cfg.Foreground, p.cfg.Background)
}

func (p *Panel) flush() {
	if err := p.dev.Display.Display(); err != nil {
		p.logger.Warn("panel:display", slog.Any("reason", err))
	}
}
