// Package gesture decides what raw input means: a finger drawing, a pinch
// resizing the pen, or a stray contact left over from a pinch.
package gesture

import (
	"time"

	"FingerPaint/internal/state"
)

type Action uint8

const (
	Down Action = iota
	Move
	Up
	Cancel
)

func (a Action) String() string {
	switch a {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// TouchEvent is one platform touch sample. Fingers is the number of contacts
// on the screen while the event is delivered, including the one lifting on Up.
type TouchEvent struct {
	Action  Action
	Pos     state.Point
	Time    time.Time
	Fingers int
}

// PinchEvent carries the change in finger spread since the previous pinch
// update, as a ratio.
type PinchEvent struct {
	Ratio float32
}

type Phase uint8

const (
	Idle Phase = iota
	Drawing
	Scaling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Scaling:
		return "scaling"
	}
	return "unknown"
}
