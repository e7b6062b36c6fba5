package state

// History is the pair of stacks deciding which strokes are visible. Strokes
// are moved between the stacks by pointer, never copied.
//
// History is not safe for concurrent use; all calls come from the UI goroutine.
type History struct {
	undo []*Stroke
	redo []*Stroke
}

func NewHistory() *History {
	return &History{}
}

// Begin opens a new stroke on top of the undo stack. Drawing after an undo
// discards whatever could have been redone.
func (h *History) Begin(style Style) *Stroke {
	s := newStroke(style)
	h.undo = append(h.undo, s)
	h.redo = nil
	return s
}

// Undo moves the newest visible stroke onto the redo stack. It returns false
// when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	s := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	s.seal()
	h.redo = append(h.redo, s)
	return true
}

// Redo moves the most recently undone stroke back onto the undo stack. It
// returns false when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	s := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, s)
	return true
}

// Clear empties both stacks.
func (h *History) Clear() {
	for _, s := range h.undo {
		s.seal()
	}
	h.undo = nil
	h.redo = nil
}

// Strokes returns the visible strokes, oldest first.
func (h *History) Strokes() []*Stroke {
	out := make([]*Stroke, len(h.undo))
	copy(out, h.undo)
	return out
}

// Top returns the newest visible stroke, or nil.
func (h *History) Top() *Stroke {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// PeekRedo returns the stroke the next Redo would restore, or nil.
func (h *History) PeekRedo() *Stroke {
	if len(h.redo) == 0 {
		return nil
	}
	return h.redo[len(h.redo)-1]
}

func (h *History) UndoDepth() int { return len(h.undo) }

func (h *History) RedoDepth() int { return len(h.redo) }
