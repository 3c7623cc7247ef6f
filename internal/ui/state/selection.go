package state

// Selection is the cursor over the fixed tab collection. Index always stays
// within [0, Len) while Len is positive.
type Selection struct {
	Index int
	Len   int
}

// NewSelection returns a cursor on the first of n tabs.
func NewSelection(n int) Selection {
	if n < 0 {
		n = 0
	}
	return Selection{Len: n}
}

// MoveUp moves the cursor one tab towards the start. It stops at zero.
func (s *Selection) MoveUp() bool {
	return s.moveBy(-1)
}

// MoveDown moves the cursor one tab towards the end. It stops at the last tab.
func (s *Selection) MoveDown() bool {
	return s.moveBy(1)
}

// MoveHome moves the cursor to the first tab.
func (s *Selection) MoveHome() bool {
	return s.moveBy(-s.Len)
}

// MoveEnd moves the cursor to the last tab.
func (s *Selection) MoveEnd() bool {
	return s.moveBy(s.Len)
}

// Valid reports whether Index addresses a tab.
func (s Selection) Valid() bool {
	return s.Len > 0 && s.Index >= 0 && s.Index < s.Len
}

func (s *Selection) moveBy(delta int) bool {
	if s.Len <= 0 {
		s.Index = 0
		return false
	}
	old := s.Index
	if s.Index < 0 {
		s.Index = 0
	}
	s.Index += delta
	if s.Index < 0 {
		s.Index = 0
	}
	if s.Index >= s.Len {
		s.Index = s.Len - 1
	}
	return s.Index != old
}
