package backend

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/kiosk-panel/internal/event"
)

func TestTickerSendsTicks(t *testing.T) {
	bus := event.NewBus()
	tk := NewTicker(context.Background(), bus, 5*time.Millisecond)
	defer func() {
		tk.Stop()
		tk.Wait()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for i := 0; i < 3; i++ {
		evt, err := bus.Next(ctx)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if evt.Kind != event.KindTick {
			t.Fatalf("expected tick, got %s", evt)
		}
	}
}

func TestTickerStopsOnCancel(t *testing.T) {
	bus := event.NewBus()
	parent, cancel := context.WithCancel(context.Background())
	tk := NewTicker(parent, bus, time.Hour)
	cancel()

	done := make(chan struct{})
	go func() {
		tk.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker did not stop after parent cancel")
	}
	if bus.Len() != 0 {
		t.Fatalf("expected no ticks, got %d", bus.Len())
	}
}

func TestTickerStopsWhenBusCloses(t *testing.T) {
	bus := event.NewBus()
	bus.Close()
	tk := NewTicker(context.Background(), bus, time.Millisecond)

	done := make(chan struct{})
	go func() {
		tk.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		tk.Stop()
		t.Fatalf("ticker kept running after bus close")
	}
}

func TestTickerDefaultInterval(t *testing.T) {
	tk := NewTicker(context.Background(), event.NewBus(), 0)
	defer tk.Stop()
	if tk.interval != DefaultTickInterval {
		t.Fatalf("expected default interval, got %s", tk.interval)
	}
}
