// Package balanceboard decodes balance board pressure frames.
package balanceboard

import (
	"fmt"

	"github.com/padservo/padservo/controller"
)

// InputState holds the four corner pressure sensors and the board temperature.
type InputState struct {
	TopLeft, TopRight       uint16
	BottomLeft, BottomRight uint16
	Temperature             int8
}

// Source is implemented by handles that carry balance board frames.
type Source interface {
	BalanceBoardInput() InputState
}

func Decode(h controller.Handle) InputState {
	if src, ok := h.(Source); ok {
		return src.BalanceBoardInput()
	}
	return InputState{}
}

// FormatReport renders the diagnostic line for this state.
func (b InputState) FormatReport(idx int) string {
	return fmt.Sprintf("idx=%d,  TL=%d, TR=%d, BL=%d, BR=%d, temperature=%d",
		idx,
		b.TopLeft,
		b.TopRight,
		b.BottomLeft,
		b.BottomRight,
		b.Temperature,
	)
}
