package entities

// SelectionSession holds the candidate list and the evolving selection state
// while the user decides which upgrades to apply. It is pure in-memory state:
// no I/O, no network, so the rendering loop on top of it stays swappable.
// No candidate is pre-selected.
type SelectionSession struct {
	candidates []UpdateCandidate
	selected   []bool
	cursor     int
}

// NewSelectionSession creates a session over an ordered candidate list.
func NewSelectionSession(candidates []UpdateCandidate) *SelectionSession {
	return &SelectionSession{
		candidates: candidates,
		selected:   make([]bool, len(candidates)),
	}
}

// Candidates returns the ordered candidate list.
func (s *SelectionSession) Candidates() []UpdateCandidate { return s.candidates }

// Len returns the number of candidates.
func (s *SelectionSession) Len() int { return len(s.candidates) }

// Cursor returns the index the cursor is on.
func (s *SelectionSession) Cursor() int { return s.cursor }

// MoveDown advances the cursor, wrapping at the end of the list.
func (s *SelectionSession) MoveDown() {
	if len(s.candidates) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.candidates)
}

// MoveUp moves the cursor back, wrapping at the start of the list.
func (s *SelectionSession) MoveUp() {
	if len(s.candidates) == 0 {
		return
	}
	s.cursor = (s.cursor + len(s.candidates) - 1) % len(s.candidates)
}

// Toggle flips the selection state of the candidate under the cursor.
func (s *SelectionSession) Toggle() {
	if len(s.candidates) == 0 {
		return
	}
	s.selected[s.cursor] = !s.selected[s.cursor]
}

// ToggleAll selects every candidate, or deselects every candidate when all
// are already selected.
func (s *SelectionSession) ToggleAll() {
	all := true
	for _, sel := range s.selected {
		if !sel {
			all = false
			break
		}
	}
	for i := range s.selected {
		s.selected[i] = !all
	}
}

// SelectAll marks every candidate as selected.
func (s *SelectionSession) SelectAll() {
	for i := range s.selected {
		s.selected[i] = true
	}
}

// IsSelected reports the selection state of the candidate at index i.
func (s *SelectionSession) IsSelected(i int) bool {
	return i >= 0 && i < len(s.selected) && s.selected[i]
}

// Selected returns the chosen candidates in list order.
func (s *SelectionSession) Selected() []UpdateCandidate {
	var out []UpdateCandidate
	for i, sel := range s.selected {
		if sel {
			out = append(out, s.candidates[i])
		}
	}
	return out
}
