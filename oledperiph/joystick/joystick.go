// Package joystick reads a five-way joystick wired as five active-low
// switches.
package joystick

// State is a bitmask of pressed directions.
type State uint8

const (
	Center State = 1 << iota
	Up
	Down
	Left
	Right
)

// Has reports whether every bit in s is pressed.
func (st State) Has(s State) bool {
	return st&s == s && s != 0
}

func (st State) String() string {
	if st == 0 {
		return "none"
	}
	names := [...]string{"center", "up", "down", "left", "right"}
	var out string
	for i, name := range names {
		if st&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	return out
}

// Pin is a digital input. machine.Pin satisfies it.
type Pin interface {
	Get() bool
}

// Pins holds one input per direction. Nil pins read as released.
type Pins struct {
	Center Pin
	Up     Pin
	Down   Pin
	Left   Pin
	Right  Pin
}

// Device reads the joystick pins.
type Device struct {
	pins Pins
}

// New creates a joystick on already configured input pins (pull-up, so a
// press reads low).
func New(pins Pins) Device {
	return Device{pins: pins}
}

// Read samples every pin once and returns the pressed directions.
func (d Device) Read() State {
	var s State
	for _, p := range [...]struct {
		pin Pin
		bit State
	}{
		{d.pins.Center, Center},
		{d.pins.Up, Up},
		{d.pins.Down, Down},
		{d.pins.Left, Left},
		{d.pins.Right, Right},
	} {
		if p.pin != nil && !p.pin.Get() {
			s |= p.bit
		}
	}
	return s
}
