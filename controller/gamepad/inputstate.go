// Package gamepad decodes gamepad frames into normalized snapshots.
package gamepad

import (
	"fmt"
	"strings"

	"github.com/padservo/padservo/controller"
)

// InputState is a decoded, read-only view of one gamepad frame.
type InputState struct {
	// Sticks: -511..512
	LX, LY int32
	RX, RY int32
	// Brake and throttle: 0..1023
	Brake, Throttle int32

	DPad        uint8
	Buttons     uint16
	MiscButtons uint8

	GyroX, GyroY, GyroZ    int32
	AccelX, AccelY, AccelZ int32
}

// Source is implemented by handles that carry gamepad frames.
type Source interface {
	GamepadInput() InputState
}

// Decode projects the handle's current frame into an InputState. Handles
// without gamepad data decode to the zero state. Axis and trigger values
// outside their documented ranges are clamped.
func Decode(h controller.Handle) InputState {
	src, ok := h.(Source)
	if !ok {
		return InputState{}
	}
	s := src.GamepadInput()
	s.LX = clamp(s.LX, AxisMin, AxisMax)
	s.LY = clamp(s.LY, AxisMin, AxisMax)
	s.RX = clamp(s.RX, AxisMin, AxisMax)
	s.RY = clamp(s.RY, AxisMin, AxisMax)
	s.Brake = clamp(s.Brake, TriggerMin, TriggerMax)
	s.Throttle = clamp(s.Throttle, TriggerMin, TriggerMax)
	return s
}

// Pressed reports whether every bit in mask is held.
func (s InputState) Pressed(mask uint16) bool {
	return mask != 0 && s.Buttons&mask == mask
}

// FormatReport renders the diagnostic line for this state.
func (s InputState) FormatReport(idx int) string {
	return fmt.Sprintf(
		"idx=%d, dpad: 0x%02x, buttons: 0x%04x, axis L: %4d, %4d, axis R: %4d, %4d, brake: %4d, throttle: %4d, "+
			"misc: 0x%02x, gyro x:%6d y:%6d z:%6d, accel x:%6d y:%6d z:%6d",
		idx,
		s.DPad,
		s.Buttons,
		s.LX, s.LY,
		s.RX, s.RY,
		s.Brake,
		s.Throttle,
		s.MiscButtons,
		s.GyroX, s.GyroY, s.GyroZ,
		s.AccelX, s.AccelY, s.AccelZ,
	)
}

// ButtonByName resolves a configuration name (case-insensitive) to its bitmask.
func ButtonByName(name string) (uint16, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for mask, bn := range ButtonName {
		if bn == n {
			return mask, nil
		}
	}
	return 0, fmt.Errorf("unknown gamepad button %q", name)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
