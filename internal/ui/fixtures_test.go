package ui

import (
	"testing"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/tab"
	"github.com/atomicstack/kiosk-panel/internal/testutil"
)

type panel struct {
	bus      *event.Bus
	finder   *testutil.Finder
	spawner  *testutil.Spawner
	storage  *tab.Storage
	replays  *tab.Replays
	launcher *tab.Launcher
	exit     *tab.Exit
	harness  *Harness
}

func (p *panel) model() *Model { return p.harness.Model() }

// send enqueues events and pumps them through the model.
func (p *panel) send(evts ...event.Event) {
	for _, evt := range evts {
		p.bus.Send(evt)
	}
	p.harness.Pump()
}

func (p *panel) press(buttons ...event.Button) {
	for _, b := range buttons {
		p.send(event.Hardware(b))
	}
}

func newPanel(t *testing.T) *panel {
	t.Helper()
	testutil.QuietLog(t)

	p := &panel{
		bus:     event.NewBus(),
		finder:  &testutil.Finder{Device: testutil.Device{Mount: "/media/card", Ver: "1.11.1", HasVer: true}},
		spawner: &testutil.Spawner{},
	}
	p.storage = tab.NewStorage(p.finder)
	p.replays = tab.NewReplays()
	p.launcher = tab.NewLauncher("", p.spawner, tab.DefaultCommand())
	p.exit = tab.NewExit()
	model := NewModel(Options{
		Bus:     p.bus,
		Tabs:    []tab.Tab{p.storage, p.replays, p.launcher, p.exit},
		Version: "1.2.3",
		Width:   80,
		Height:  20,
	})
	p.harness = NewHarness(model)
	return p
}
