package event

import (
	"context"
	"errors"
	"sync"

	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// ErrClosed is returned by Next once the bus has been closed.
var ErrClosed = errors.New("event bus closed")

// Sender is the producer side of the bus. It is safe for concurrent use.
type Sender interface {
	Send(Event) bool
}

// Bus is a multi-producer, single-consumer FIFO. Sends never block and are
// never dropped while the bus is open; the queue grows as needed.
type Bus struct {
	mu     sync.Mutex
	queue  []Event
	closed bool

	wake chan struct{}
	done chan struct{}
}

// NewBus returns an open, empty bus.
func NewBus() *Bus {
	return &Bus{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Send enqueues evt. It returns false only when the bus is closed, which
// happens when the consumer is gone and the process is shutting down.
func (b *Bus) Send(evt Event) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		events.Bus.Dropped(evt.String())
		return false
	}
	b.queue = append(b.queue, evt)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
	return true
}

// Next blocks until an event is available and returns it. It returns
// ErrClosed after Close, or ctx.Err() when ctx is cancelled first.
func (b *Bus) Next(ctx context.Context) (Event, error) {
	for {
		evt, ok, closed := b.pop()
		if ok {
			return evt, nil
		}
		if closed {
			return Event{}, ErrClosed
		}
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-b.done:
		case <-b.wake:
		}
	}
}

// TryNext pops the oldest event without blocking.
func (b *Bus) TryNext() (Event, bool) {
	evt, ok, _ := b.pop()
	return evt, ok
}

// Len reports the number of queued events.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close severs the bus. Queued events are discarded and later sends fail.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	pending := len(b.queue)
	b.queue = nil
	b.mu.Unlock()
	close(b.done)
	events.Bus.Closed(pending)
}

func (b *Bus) pop() (Event, bool, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Event{}, false, true
	}
	if len(b.queue) == 0 {
		return Event{}, false, false
	}
	evt := b.queue[0]
	b.queue[0] = Event{}
	b.queue = b.queue[1:]
	return evt, true, false
}
