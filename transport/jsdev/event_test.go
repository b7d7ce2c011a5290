package jsdev

import (
	"testing"

	"github.com/0xcafed00d/joystick"
	"github.com/stretchr/testify/assert"

	"github.com/padservo/padservo/controller/gamepad"
)

func TestScaleAxis(t *testing.T) {
	tests := []struct {
		in   int16
		want int32
	}{
		{-32768, -511},
		{32767, 512},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scaleAxis(tt.in), "in=%d", tt.in)
	}
	assert.Equal(t, int32(0), scaleTrigger(-32768))
	assert.Equal(t, int32(1023), scaleTrigger(32767))
}

func TestFold(t *testing.T) {
	rest := []int{0, 0, -32768, 0, 0, -32768, 0, 0}
	axes := func(set map[int]int) []int {
		a := append([]int(nil), rest...)
		for n, v := range set {
			a[n] = v
		}
		return a
	}

	tests := []struct {
		name  string
		state joystick.State
		want  gamepad.InputState
	}{
		{
			name:  "at rest",
			state: joystick.State{AxisData: rest},
			want:  gamepad.InputState{},
		},
		{
			name:  "face buttons",
			state: joystick.State{AxisData: rest, Buttons: 1<<1 | 1<<2},
			want:  gamepad.InputState{Buttons: gamepad.ButtonB | gamepad.ButtonX},
		},
		{
			name:  "misc buttons",
			state: joystick.State{AxisData: rest, Buttons: 1<<7 | 1<<8},
			want:  gamepad.InputState{MiscButtons: gamepad.MiscStart | gamepad.MiscSystem},
		},
		{
			name: "sticks and triggers",
			state: joystick.State{AxisData: axes(map[int]int{
				axisLY: -32768, axisRX: 32767, axisRT: 32767,
			})},
			want: gamepad.InputState{LY: -511, RX: 512, Throttle: 1023},
		},
		{
			name:  "hat",
			state: joystick.State{AxisData: axes(map[int]int{axisHatX: 32767, axisHatY: 32767})},
			want:  gamepad.InputState{DPad: gamepad.DPadRight | gamepad.DPadDown},
		},
		{
			name:  "out of range values clamp",
			state: joystick.State{AxisData: axes(map[int]int{axisLX: 99999})},
			want:  gamepad.InputState{LX: 512},
		},
		{
			name:  "short axis list",
			state: joystick.State{AxisData: []int{32767}},
			want:  gamepad.InputState{LX: 512},
		},
		{
			name:  "unknown button ignored",
			state: joystick.State{AxisData: rest, Buttons: 1 << 20},
			want:  gamepad.InputState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold(tt.state))
		})
	}
}

func TestHeldKeepsDeviceFresh(t *testing.T) {
	assert.False(t, held(gamepad.InputState{LX: 300, Throttle: 1023}))
	assert.True(t, held(gamepad.InputState{Buttons: gamepad.ButtonA}))
	assert.True(t, held(gamepad.InputState{MiscButtons: gamepad.MiscStart}))
	assert.True(t, held(gamepad.InputState{DPad: gamepad.DPadUp}))
}

func TestEscapeString(t *testing.T) {
	raw := make([]byte, 16)
	copy(raw, "Xbox Pad")
	assert.Equal(t, "Xbox Pad", escapeString(raw))
}

func TestJoystickIndex(t *testing.T) {
	n, ok := joystickIndex("js12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	for _, name := range []string{"event3", "mice", "js", "js-1", "js+1", "jsx"} {
		assert.False(t, isJoystick(name), name)
	}
}
