package ui

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/tab"
)

func TestMenuCursorSaturates(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonUp)
	if got := p.model().Selected(); got != 0 {
		t.Fatalf("expected selection 0, got %d", got)
	}
	p.press(event.ButtonDown, event.ButtonDown, event.ButtonDown, event.ButtonDown, event.ButtonDown)
	if got := p.model().Selected(); got != 3 {
		t.Fatalf("expected selection 3, got %d", got)
	}
	if p.model().Screen() != ScreenMenu {
		t.Fatalf("expected menu screen, got %s", p.model().Screen())
	}
}

func TestMenuBackIsIgnored(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonBack)
	if p.model().Screen() != ScreenMenu || p.model().Selected() != 0 {
		t.Fatalf("back on the menu must not change state")
	}
}

func TestDownSelectBackOnReplays(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonDown)
	if p.model().Selected() != 1 || p.model().Screen() != ScreenMenu {
		t.Fatalf("expected menu on tab 1")
	}
	p.press(event.ButtonSelect)
	if p.model().Screen() != ScreenTab || !p.replays.State().Active {
		t.Fatalf("expected replays tab active")
	}
	p.press(event.ButtonBack)
	if p.model().Screen() != ScreenMenu || p.replays.State().Active {
		t.Fatalf("expected menu with replays inactive")
	}
	if p.model().Selected() != 1 {
		t.Fatalf("selection must survive open/close, got %d", p.model().Selected())
	}
}

func TestSelectBackOnEveryTabLeavesNoChild(t *testing.T) {
	p := newPanel(t)
	for i := range p.model().Tabs() {
		p.press(event.ButtonSelect, event.ButtonBack)
		current := p.model().Tabs()[i]
		if current.State().Active {
			t.Fatalf("tab %s still active after back", current.Name())
		}
		if p.model().Screen() != ScreenMenu {
			t.Fatalf("expected menu after back on %s", current.Name())
		}
		p.press(event.ButtonDown)
	}
	if p.launcher.Handle() != nil {
		t.Fatalf("launcher kept a child after close")
	}
	if len(p.spawner.Handles) != 1 || p.spawner.Handles[0].Kills != 1 {
		t.Fatalf("expected exactly one spawned and killed child, got %+v", p.spawner.Handles)
	}
}

func TestActiveTabReceivesOtherButtons(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonDown, event.ButtonDown, event.ButtonSelect)
	p.press(event.ButtonUp, event.ButtonDown, event.ButtonSelect)
	if p.model().Selected() != 2 {
		t.Fatalf("buttons inside a tab must not move the cursor, got %d", p.model().Selected())
	}
	if p.model().Screen() != ScreenTab {
		t.Fatalf("expected to stay in the tab")
	}
	if len(p.spawner.Handles) != 1 {
		t.Fatalf("select inside the launcher must not respawn, got %d", len(p.spawner.Handles))
	}
}

func TestExitTabConfirmQuits(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonDown, event.ButtonDown, event.ButtonDown)
	p.press(event.ButtonSelect)
	if p.model().Screen() != ScreenTab || !p.exit.State().Active {
		t.Fatalf("expected exit tab active")
	}
	p.press(event.ButtonSelect)
	if p.model().Running() {
		t.Fatalf("expected loop to stop after confirm")
	}
	if p.model().Screen() != ScreenExiting {
		t.Fatalf("expected exiting screen, got %s", p.model().Screen())
	}
	if !p.harness.Quit() {
		t.Fatalf("expected tea.Quit to be returned")
	}
	if p.exit.State().Active {
		t.Fatalf("expected exit tab closed on shutdown")
	}
}

func TestQuitFromAnyScreenStopsProcessing(t *testing.T) {
	setups := map[string]func(p *panel){
		"menu": func(*panel) {},
		"tab": func(p *panel) {
			p.press(event.ButtonSelect)
		},
		"launcher": func(p *panel) {
			p.press(event.ButtonDown, event.ButtonDown, event.ButtonSelect)
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			p := newPanel(t)
			setup(p)
			selected := p.model().Selected()

			p.bus.Send(event.App(event.CommandQuit))
			p.bus.Send(event.Hardware(event.ButtonDown))
			p.bus.Send(event.Hardware(event.ButtonBack))
			consumed := p.harness.Pump()
			if consumed != 1 {
				t.Fatalf("expected only the quit to be consumed, got %d", consumed)
			}
			if p.model().Running() || p.model().Screen() != ScreenExiting {
				t.Fatalf("expected exiting, got running=%v screen=%s", p.model().Running(), p.model().Screen())
			}

			p.harness.Send(busEventMsg{evt: event.Hardware(event.ButtonUp)})
			if p.model().Selected() != selected || p.model().Screen() != ScreenExiting {
				t.Fatalf("events after quit must not be processed")
			}
			for _, tb := range p.model().Tabs() {
				if tb.State().Active {
					t.Fatalf("tab %s still active after quit", tb.Name())
				}
			}
		})
	}
}

func TestQuitKillsRunningChild(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonDown, event.ButtonDown, event.ButtonSelect)
	if p.launcher.Handle() == nil {
		t.Fatalf("expected a running child")
	}
	p.send(event.App(event.CommandQuit))
	if p.spawner.Handles[0].Kills != 1 {
		t.Fatalf("expected child killed on quit")
	}
	p.model().Shutdown()
	if p.spawner.Handles[0].Kills != 1 {
		t.Fatalf("shutdown must be idempotent")
	}
}

func TestLauncherSpawnFailureKeepsTabOpen(t *testing.T) {
	p := newPanel(t)
	p.spawner.Err = errors.New("dolphin-emu: not found")
	p.press(event.ButtonDown, event.ButtonDown, event.ButtonSelect)
	if p.model().Screen() != ScreenTab || !p.launcher.State().Active {
		t.Fatalf("expected active launcher despite failure")
	}
	if p.launcher.Handle() != nil {
		t.Fatalf("expected no child")
	}
	p.press(event.ButtonBack)
	if p.model().Screen() != ScreenMenu || p.launcher.State().Active {
		t.Fatalf("expected clean close after failed launch")
	}
}

func TestStorageTabQueriesOncePerOpen(t *testing.T) {
	p := newPanel(t)
	p.press(event.ButtonSelect, event.ButtonSelect, event.ButtonUp)
	if p.finder.Calls != 1 {
		t.Fatalf("expected one storage query, got %d", p.finder.Calls)
	}
	p.press(event.ButtonBack, event.ButtonSelect)
	if p.finder.Calls != 2 {
		t.Fatalf("expected reopen to query again, got %d", p.finder.Calls)
	}
}

func TestTickChangesNothing(t *testing.T) {
	p := newPanel(t)
	before := p.harness.View()
	p.send(event.Tick(), event.Tick())
	if p.model().Screen() != ScreenMenu || p.model().Selected() != 0 {
		t.Fatalf("tick changed state")
	}
	if p.harness.View() != before {
		t.Fatalf("tick changed the view")
	}
}

func TestReloadRunsCallback(t *testing.T) {
	p := newPanel(t)
	calls := 0
	p.model().reload = func() error {
		calls++
		if calls == 2 {
			return errors.New("bad yaml")
		}
		return nil
	}
	p.send(event.App(event.CommandReload), event.App(event.CommandReload))
	if calls != 2 {
		t.Fatalf("expected two reloads, got %d", calls)
	}
	if !p.model().Running() {
		t.Fatalf("reload failure must not stop the loop")
	}
}

func TestEveryConsumedEventRendersAFrame(t *testing.T) {
	p := newPanel(t)
	before := p.harness.Frames()
	p.bus.Send(event.Tick())
	p.bus.Send(event.Hardware(event.ButtonDown))
	p.bus.Send(event.Terminal("x"))
	consumed := p.harness.Pump()
	if consumed != 3 {
		t.Fatalf("expected 3 events consumed, got %d", consumed)
	}
	if got := p.harness.Frames() - before; got != consumed {
		t.Fatalf("expected %d frames, got %d", consumed, got)
	}
}

func TestSelectionBoundedUnderRandomInput(t *testing.T) {
	p := newPanel(t)
	rng := rand.New(rand.NewSource(42))
	buttons := []event.Button{event.ButtonUp, event.ButtonDown, event.ButtonSelect, event.ButtonBack}
	for i := 0; i < 400 && p.model().Running(); i++ {
		p.press(buttons[rng.Intn(len(buttons))])
		sel := p.model().Selected()
		if sel < 0 || sel >= len(p.model().Tabs()) {
			t.Fatalf("step %d: selection %d out of bounds", i, sel)
		}
		active := 0
		for _, tb := range p.model().Tabs() {
			if tb.State().Active {
				active++
			}
		}
		if p.model().Screen() == ScreenTab && active != 1 {
			t.Fatalf("step %d: expected exactly one active tab, got %d", i, active)
		}
		if p.model().Screen() == ScreenMenu && active != 0 {
			t.Fatalf("step %d: expected no active tab on the menu, got %d", i, active)
		}
	}
	if h := p.launcher.Handle(); h != nil && !p.launcher.State().Active {
		t.Fatalf("child handle without an active launcher")
	}
}

func TestEmptyTabCollection(t *testing.T) {
	bus := event.NewBus()
	h := NewHarness(NewModel(Options{Bus: bus, Tabs: []tab.Tab{}}))
	bus.Send(event.Hardware(event.ButtonSelect))
	bus.Send(event.Hardware(event.ButtonDown))
	h.Pump()
	if h.Model().Screen() != ScreenMenu {
		t.Fatalf("expected menu with no tabs")
	}
	if h.View() == "" {
		t.Fatalf("expected a view even without tabs")
	}
}
