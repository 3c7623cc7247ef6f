// Package backend runs the periodic producers that feed the event bus.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/kiosk-panel/internal/event"
)

// DefaultTickInterval is used when the configured interval is not positive.
const DefaultTickInterval = 250 * time.Millisecond

// Ticker publishes a Tick event at a fixed interval.
type Ticker struct {
	interval time.Duration
	bus      event.Sender

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker starts a ticker that sends on bus until Stop is called or the
// bus refuses an event.
func NewTicker(parent context.Context, bus event.Sender, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(parent)
	t := &Ticker{
		interval: interval,
		bus:      bus,
		ctx:      ctx,
		cancel:   cancel,
	}
	t.wg.Add(1)
	go t.run()
	return t
}

// Stop cancels the ticker. Use Wait if the goroutine must be gone.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the ticker goroutine has exited.
func (t *Ticker) Wait() {
	t.wg.Wait()
}

func (t *Ticker) run() {
	defer t.wg.Done()
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-t.ctx.Done():
			return
		case <-tick.C:
			if !t.bus.Send(event.Tick()) {
				return
			}
		}
	}
}
