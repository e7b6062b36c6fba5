package state

import (
	"github.com/google/uuid"
)

// newStrokeID labels a stroke for logs and debugging. History order, not the
// ID, decides paint order.
func newStrokeID() string {
	return uuid.NewString()
}
