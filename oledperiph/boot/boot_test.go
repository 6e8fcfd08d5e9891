package boot

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestRunOrder(t *testing.T) {
	var order []string
	step := func(name string) Step {
		return Do(name, func() { order = append(order, name) })
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Run(logger, step("i2c"), step("oled"), step("light"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(order, ","); got != "i2c,oled,light" {
		t.Fatalf("ran %s, want i2c,oled,light", got)
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	ranAfter := false
	err := Run(logger,
		Do("gpio", func() {}),
		Step{Name: "i2c", Run: func() error { return errors.New("bus busy") }},
		Do("oled", func() { ranAfter = true }),
	)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "boot i2c: bus busy" {
		t.Fatalf("got %q", err.Error())
	}
	if ranAfter {
		t.Fatal("step after failure ran")
	}
	if !strings.Contains(logs.String(), "boot:step-failed") || !strings.Contains(logs.String(), "step=i2c") {
		t.Fatalf("missing failure log: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "step=gpio") {
		t.Fatalf("missing success log for gpio: %s", logs.String())
	}
}

func TestRunEmpty(t *testing.T) {
	if err := Run(slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatal(err)
	}
}
