// Package boot runs the board's initialisation as an ordered list of steps.
//
// Steps run once, in order, with no retries: each one assumes the ones before
// it succeeded (a bus is configured before the devices on it).
package boot

import (
	"errors"
	"log/slog"
	"time"
)

// Step is one named initialisation action.
type Step struct {
	Name string
	Run  func() error
}

// Run executes steps in order and stops at the first failure. The returned
// error names the failing step.
func Run(logger *slog.Logger, steps ...Step) error {
	for _, s := range steps {
		start := time.Now()
		if err := s.Run(); err != nil {
			logger.Error("boot:step-failed", slog.String("step", s.Name), slog.Any("reason", err))
			return errors.New("boot " + s.Name + ": " + err.Error())
		}
		logger.Info("boot:step", slog.String("step", s.Name), slog.Duration("took", time.Since(start)))
	}
	return nil
}

// Do wraps an initialisation call that cannot fail.
func Do(name string, fn func()) Step {
	return Step{Name: name, Run: func() error {
		fn()
		return nil
	}}
}
