//go:build tinygo

// Command oledperiph polls the board's light sensor, temperature sensor,
// trim potentiometer and joystick and shows the readings on an SSD1306 OLED.
//
// Flash with:
//
//	tinygo flash -target=pico ./oledperiph
//
// Render the trimpot as a raw count instead of low/high labels with:
//
//	tinygo flash -target=pico -ldflags="-X main.trimpotMode=numeric" ./oledperiph
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picoperiph/oledperiph/boot"
	"github.com/harveysanders/picoperiph/oledperiph/joystick"
	"github.com/harveysanders/picoperiph/oledperiph/light"
	"github.com/harveysanders/picoperiph/oledperiph/max6576"
	"github.com/harveysanders/picoperiph/oledperiph/oled"
	"github.com/harveysanders/picoperiph/oledperiph/panel"
	"github.com/harveysanders/picoperiph/oledperiph/systick"
	"github.com/harveysanders/picoperiph/oledperiph/trimpot"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
)

const (
	banner      = "OLED - Peripherals\r\n"
	oledAddress = 0x3C
	oledWidth   = 128
	oledHeight  = 64
	cellHeight  = 8
)

// Pin map.
const (
	sdaPin    = machine.GP4
	sclPin    = machine.GP5
	debugLED  = machine.GP21
	tempPin   = machine.GP16
	joyCenter = machine.GP10
	joyUp     = machine.GP11
	joyDown   = machine.GP12
	joyLeft   = machine.GP13
	joyRight  = machine.GP14
)

// trimpotMode selects how the trimpot row is drawn ("labels" or "numeric").
// Set via linker flags.
var trimpotMode = "labels"

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := panel.DefaultConfig()
	policy, err := panel.ParseTrimpotPolicy(trimpotMode)
	if err != nil {
		printErrForever(logger, "parse trimpot mode", slog.Any("reason", err))
	}
	cfg.Trimpot = policy

	var (
		screen *oled.Screen
		lux    *light.Sensor
		temp   *max6576.Device
		pot    trimpot.Reader
		joy    joystick.Device
	)

	err = boot.Run(logger,
		boot.Step{Name: "uart", Run: func() error {
			_, err := machine.Serial.Write([]byte(banner))
			return err
		}},
		boot.Do("gpio", func() {
			debugLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
			tempPin.Configure(machine.PinConfig{Mode: machine.PinInput})
			for _, p := range []machine.Pin{joyCenter, joyUp, joyDown, joyLeft, joyRight} {
				p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
			}
		}),
		boot.Do("systick", func() {
			systick.Start(time.Millisecond)
		}),
		boot.Step{Name: "i2c", Run: func() error {
			return machine.I2C0.Configure(machine.I2CConfig{
				SDA:       sdaPin,
				SCL:       sclPin,
				Frequency: 400 * machine.KHz,
			})
		}},
		boot.Do("adc", func() {
			machine.InitADC()
			adc := machine.ADC{Pin: machine.ADC0}
			adc.Configure(machine.ADCConfig{})
			pot = trimpot.New(adc)
		}),
		boot.Do("oled", func() {
			screen = configureOLED(machine.I2C0)
		}),
		boot.Do("light", func() {
			lux = light.New(machine.I2C0)
			lux.Enable()
			lux.SetRange(light.Range4000)
			logger.Info("light:range", slog.String("range", light.Range4000.String()))
		}),
		boot.Do("joystick", func() {
			joy = joystick.New(joystick.Pins{
				Center: joyCenter,
				Up:     joyUp,
				Down:   joyDown,
				Left:   joyLeft,
				Right:  joyRight,
			})
		}),
		boot.Do("temp", func() {
			temp = max6576.New(tempPin, systick.Millis)
			temp.Configure(max6576.Config{Scale: max6576.Scale10us})
		}),
	)
	if err != nil {
		printErrForever(logger, "boot", slog.Any("reason", err))
	}

	p := panel.New(cfg, panel.Devices{
		Display:     screen,
		Thermometer: temp,
		Light:       lux,
		Trimpot:     pot,
		Joystick:    joy,
		LED:         debugLED,
	}, logger)
	p.Setup()
	p.Run()
}

// configureOLED initialises the SSD1306 on a preconfigured I2C bus and
// returns a Screen drawing 8px text rows.
func configureOLED(i2c *machine.I2C) *oled.Screen {
	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: oledAddress,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	dev.ClearDisplay()
	return oled.New(dev, &tinyfont.Org01, cellHeight)
}

// printErrForever logs msg @ 1hz so it shows up whenever the serial monitor
// attaches. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
