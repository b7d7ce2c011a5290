package mouse

import (
	"fmt"
	"strings"

	"github.com/padservo/padservo/controller"
)

// Button bitmasks
const (
	BtnLeft    uint16 = 0x01
	BtnRight   uint16 = 0x02
	BtnMiddle  uint16 = 0x04
	BtnBack    uint16 = 0x08
	BtnForward uint16 = 0x10
)

// ButtonName maps button bitmasks to the names accepted in scenarios.
var ButtonName = map[uint16]string{
	BtnLeft:    "left",
	BtnRight:   "right",
	BtnMiddle:  "middle",
	BtnBack:    "back",
	BtnForward: "forward",
}

// InputState represents one decoded mouse frame.
type InputState struct {
	Buttons uint16
	// ScrollWheel: signed vertical scroll delta, positive is away from the user
	ScrollWheel int8
	// Delta X/Y: signed relative movement since the previous frame
	DeltaX, DeltaY int32
}

// Source is implemented by handles that carry mouse frames.
type Source interface {
	MouseInput() InputState
}

// Decode projects the handle's current frame into an InputState.
func Decode(h controller.Handle) InputState {
	if src, ok := h.(Source); ok {
		return src.MouseInput()
	}
	return InputState{}
}

// ButtonByName resolves a button name (case-insensitive) to its bitmask.
func ButtonByName(name string) (uint16, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for mask, bn := range ButtonName {
		if bn == n {
			return mask, nil
		}
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

// Pressed reports whether every bit in mask is held.
func (m InputState) Pressed(mask uint16) bool {
	return mask != 0 && m.Buttons&mask == mask
}

// ScrollDirection returns -1, 0 or 1 following the sign of the scroll delta.
func (m InputState) ScrollDirection() int {
	switch {
	case m.ScrollWheel > 0:
		return 1
	case m.ScrollWheel < 0:
		return -1
	default:
		return 0
	}
}

// FormatReport renders the diagnostic line for this state. The scroll delta
// is printed as its 16-bit two's complement.
func (m InputState) FormatReport(idx int) string {
	return fmt.Sprintf("idx=%d, buttons: 0x%04x, scrollWheel=0x%04x, delta X: %4d, delta Y: %4d",
		idx,
		m.Buttons,
		uint16(int16(m.ScrollWheel)),
		m.DeltaX,
		m.DeltaY,
	)
}
