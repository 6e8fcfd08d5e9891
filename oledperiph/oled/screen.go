// Package oled draws text and filled rectangles on a small monochrome
// display.
//
// Example usage:
//
//	dev := ssd1306.NewI2C(machine.I2C0)
//	dev.Configure(ssd1306.Config{Address: 0x3C, Width: 128, Height: 64})
//	screen := oled.New(dev, &tinyfont.Org01, 8)
//	screen.Clear(oled.White)
//	screen.PutString(1, 1, []byte("Temp C : "), oled.Black, oled.White)
//	screen.Display()
package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Colors for monochrome displays.
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// Screen renders onto a pixel display. Drawing goes to the display's buffer;
// call Display to push it to the panel.
type Screen struct {
	device     drivers.Displayer
	font       tinyfont.Fonter
	cellHeight int16
	baseline   int16
	width      int16
	height     int16
}

// New creates a Screen drawing text rows cellHeight pixels tall. The glyph
// baseline sits two pixels above the bottom of the cell.
func New(device drivers.Displayer, font tinyfont.Fonter, cellHeight int16) *Screen {
	w, h := device.Size()
	return &Screen{
		device:     device,
		font:       font,
		cellHeight: cellHeight,
		baseline:   cellHeight - 2,
		width:      w,
		height:     h,
	}
}

// Clear fills the whole screen with c.
func (s *Screen) Clear(c color.RGBA) {
	s.FillRect(0, 0, s.width, s.height, c)
}

// FillRect fills the w×h rectangle with its top-left corner at (x, y),
// clipped to the screen.
func (s *Screen) FillRect(x, y, w, h int16, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.width), min(y+h, s.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.device.SetPixel(px, py, c)
		}
	}
}

// PutString draws str with its cell's top-left corner at (x, y): first the
// background across the text's width, then the glyphs. It draws byte by byte
// so callers can pass a reused buffer without allocating a string.
func (s *Screen) PutString(x, y int16, str []byte, fg, bg color.RGBA) {
	s.FillRect(x, y, s.TextWidth(str), s.cellHeight, bg)
	for _, ch := range str {
		r := rune(ch)
		tinyfont.DrawChar(s.device, s.font, x, y+s.baseline, r, fg)
		x += int16(s.font.GetGlyph(r).Info().XAdvance)
	}
}

// TextWidth returns the advance width of str in pixels.
func (s *Screen) TextWidth(str []byte) int16 {
	var w int16
	for _, ch := range str {
		w += int16(s.font.GetGlyph(rune(ch)).Info().XAdvance)
	}
	return w
}

// Display pushes the drawn buffer to the panel.
func (s *Screen) Display() error {
	return s.device.Display()
}
