// Package systick keeps a monotonic millisecond count for elapsed-time
// measurement. One writer advances the count; everyone else only reads it
// through Millis or a Func.
package systick

import (
	"sync"
	"sync/atomic"
	"time"
)

// Func reads a tick count in milliseconds. Drivers that need elapsed time
// take a Func rather than the Counter so they cannot advance it.
type Func func() uint32

// Counter is a millisecond tick counter with a single writer.
type Counter struct {
	ms atomic.Uint32
}

// Tick advances the count by one. Only the timer that owns the Counter
// calls it.
func (c *Counter) Tick() {
	c.ms.Add(1)
}

// Millis returns the current count. The count wraps after ~49.7 days;
// elapsed time computed by unsigned subtraction stays correct across the wrap.
func (c *Counter) Millis() uint32 {
	return c.ms.Load()
}

// Run calls Tick once per period. It blocks forever and should be called in
// its own goroutine.
func (c *Counter) Run(period time.Duration) {
	t := time.NewTicker(period)
	defer t.Stop()
	for range t.C {
		c.Tick()
	}
}

var (
	board     Counter
	startOnce sync.Once
)

// Start launches the board-wide tick writer. Calls after the first are
// ignored.
func Start(period time.Duration) {
	startOnce.Do(func() {
		go board.Run(period)
	})
}

// Millis returns the board-wide tick count.
func Millis() uint32 {
	return board.Millis()
}
