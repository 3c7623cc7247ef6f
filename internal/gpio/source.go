// Package gpio turns falling edges on button lines into Hardware events.
package gpio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

const (
	DefaultChip     = "gpiochip0"
	DefaultDebounce = 50 * time.Millisecond
	DefaultPoll     = 100 * time.Millisecond

	consumer = "kiosk-panel"
)

// ErrClosed is returned by Wait after Close.
var ErrClosed = errors.New("gpio source closed")

// Source yields line offsets that saw a press. Wait returns ok=false when
// timeout elapses without an edge.
type Source interface {
	Wait(timeout time.Duration) (offset int, ok bool, err error)
	Close() error
}

type chipSource struct {
	lines *gpiocdev.Lines
	edges chan int

	done      chan struct{}
	closeOnce sync.Once
}

// OpenChip requests offsets on chip as pulled-up inputs reporting falling
// edges. A positive debounce is also applied by the kernel.
func OpenChip(chip string, offsets []int, debounce time.Duration) (Source, error) {
	s := &chipSource{
		edges: make(chan int, 64),
		done:  make(chan struct{}),
	}
	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithConsumer(consumer),
		gpiocdev.WithEventHandler(s.handle),
	}
	if debounce > 0 {
		opts = append(opts, gpiocdev.WithDebounce(debounce))
	}
	lines, err := gpiocdev.RequestLines(chip, offsets, opts...)
	if err != nil {
		return nil, fmt.Errorf("request lines %v on %s: %w", offsets, chip, err)
	}
	s.lines = lines
	events.GPIO.Open(chip, offsets)
	return s, nil
}

func (s *chipSource) handle(evt gpiocdev.LineEvent) {
	select {
	case <-s.done:
	case s.edges <- evt.Offset:
	default:
		events.GPIO.Overflow(evt.Offset)
	}
}

func (s *chipSource) Wait(timeout time.Duration) (int, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-s.done:
		return 0, false, ErrClosed
	case offset := <-s.edges:
		return offset, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

func (s *chipSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.lines != nil {
			err = s.lines.Close()
		}
	})
	return err
}
