package router

import "github.com/BrandonKowalski/tabswipe/pkg/tabswipe"

// DefaultHistoryLimit bounds the history kept by NewTabs. Swiping back and
// forth for a whole session would otherwise grow it forever.
const DefaultHistoryLimit = 32

// StackEntry is one visited tab in the navigation history.
type StackEntry struct {
	Route tabswipe.RouteID
	Index int
}

// Stack is the tab history used for back navigation. When full, pushing
// forgets the oldest entry.
type Stack struct {
	entries []StackEntry
	limit   int
}

// NewStack creates an empty history holding at most limit entries.
// A limit of zero or less means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

// Push records the tab being switched away from.
func (s *Stack) Push(route tabswipe.RouteID, index int) {
	if s.limit > 0 && len(s.entries) == s.limit {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, StackEntry{Route: route, Index: index})
}

// Pop removes and returns the most recent entry.
func (s *Stack) Pop() (StackEntry, bool) {
	top, ok := s.Peek()
	if ok {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return top, ok
}

// Peek returns the most recent entry without removing it.
func (s *Stack) Peek() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Entries returns the history, oldest first.
func (s *Stack) Entries() []StackEntry {
	out := make([]StackEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
