package state

import (
	"math/rand"
	"testing"
)

func TestMoveUpSaturatesAtZero(t *testing.T) {
	s := NewSelection(4)
	if s.MoveUp() {
		t.Fatalf("expected no movement at the first tab")
	}
	if s.Index != 0 {
		t.Fatalf("expected index 0, got %d", s.Index)
	}
}

func TestMoveDownSaturatesAtEnd(t *testing.T) {
	s := NewSelection(3)
	for i := 0; i < 2; i++ {
		if !s.MoveDown() {
			t.Fatalf("expected move %d to succeed", i)
		}
	}
	if s.MoveDown() {
		t.Fatalf("expected no movement at the last tab")
	}
	if s.Index != 2 {
		t.Fatalf("expected index 2, got %d", s.Index)
	}
}

func TestHomeAndEnd(t *testing.T) {
	s := NewSelection(5)
	if !s.MoveEnd() || s.Index != 4 {
		t.Fatalf("expected end at 4, got %d", s.Index)
	}
	if s.MoveEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !s.MoveHome() || s.Index != 0 {
		t.Fatalf("expected home at 0, got %d", s.Index)
	}
}

func TestEmptySelection(t *testing.T) {
	s := NewSelection(0)
	s.Index = 3
	if s.MoveDown() {
		t.Fatalf("expected no movement for empty selection")
	}
	if s.Index != 0 {
		t.Fatalf("expected index reset to 0, got %d", s.Index)
	}
	if s.Valid() {
		t.Fatalf("empty selection must not be valid")
	}
}

func TestSelectionStaysInBoundsForAnySequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		s := NewSelection(n)
		for i := 0; i < 500; i++ {
			if rng.Intn(2) == 0 {
				s.MoveUp()
			} else {
				s.MoveDown()
			}
			if !s.Valid() {
				t.Fatalf("len %d step %d: index %d out of bounds", n, i, s.Index)
			}
		}
	}
}
