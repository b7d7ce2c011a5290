package dispatch

import (
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
)

// Hooks are policy extension points for controllers that do not drive the
// actuator. A nil hook does nothing.
type Hooks struct {
	// Scroll is called when a mouse frame has a non-zero scroll delta.
	// dir is 1 for up, -1 for down.
	Scroll func(slot int, dir int, s mouse.InputState)
	// Balance is called when the top-left sensor exceeds the configured threshold.
	Balance func(slot int, s balanceboard.InputState)
	// Keys is called for every keyboard frame with at least one key held.
	Keys func(slot int, s keyboard.Snapshot)
}
