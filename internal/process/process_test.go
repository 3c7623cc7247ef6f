package process

import (
	"os/exec"
	"testing"
	"time"
)

func requireSleep(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep binary not available")
	}
	return path
}

func TestExecSpawnerKillTerminatesChild(t *testing.T) {
	sleep := requireSleep(t)
	h, err := ExecSpawner{}.Spawn(Command{Program: sleep, Args: []string{"30"}})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if h.Pid() <= 0 {
		t.Fatalf("expected a pid, got %d", h.Pid())
	}
	if h.Exited() {
		t.Fatalf("child exited before kill")
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("kill: %v", err)
	}
	done := h.(*execHandle).Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("child still running after kill")
	}
	if !h.Exited() {
		t.Fatalf("expected Exited after reap")
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("second kill should be a no-op, got %v", err)
	}
}

func TestExecSpawnerKillAfterExitIsNoop(t *testing.T) {
	trueBin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true binary not available")
	}
	h, err := ExecSpawner{}.Spawn(Command{Program: trueBin})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	select {
	case <-h.(*execHandle).Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("true did not exit")
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("kill after exit: %v", err)
	}
}

func TestExecSpawnerMissingProgram(t *testing.T) {
	h, err := ExecSpawner{}.Spawn(Command{Program: "/nonexistent/kiosk-panel-test-binary"})
	if err == nil {
		t.Fatalf("expected spawn error, got handle %v", h)
	}
	if h != nil {
		t.Fatalf("expected nil handle on failure")
	}
}

func TestExecSpawnerEmptyProgram(t *testing.T) {
	if _, err := (ExecSpawner{}).Spawn(Command{}); err == nil {
		t.Fatalf("expected error for empty program")
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Program: "dolphin-emu", Args: []string{"-b", "-e", "boot.dol"}}
	if got := cmd.String(); got != "dolphin-emu -b -e boot.dol" {
		t.Fatalf("unexpected command string %q", got)
	}
}
