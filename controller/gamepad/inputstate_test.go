package gamepad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/gamepad"
	th "github.com/padservo/padservo/internal/testing"
)

func TestDecodeClamps(t *testing.T) {
	type testCase struct {
		name string
		in   gamepad.InputState
		want gamepad.InputState
	}
	cases := []testCase{
		{
			name: "in range untouched",
			in:   gamepad.InputState{LX: -511, LY: 512, RX: 10, RY: -10, Brake: 0, Throttle: 1023, Buttons: gamepad.ButtonA},
			want: gamepad.InputState{LX: -511, LY: 512, RX: 10, RY: -10, Brake: 0, Throttle: 1023, Buttons: gamepad.ButtonA},
		},
		{
			name: "out of range clamped",
			in:   gamepad.InputState{LX: -2000, LY: 2000, RX: 513, RY: -512, Brake: -1, Throttle: 4096},
			want: gamepad.InputState{LX: -511, LY: 512, RX: 512, RY: -511, Brake: 0, Throttle: 1023},
		},
		{
			name: "motion passes through",
			in:   gamepad.InputState{GyroX: -40000, AccelZ: 8192},
			want: gamepad.InputState{GyroX: -40000, AccelZ: 8192},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := th.NewHandle("pad", controller.CapGamepad)
			h.Gamepad = tc.in
			assert.Equal(t, tc.want, gamepad.Decode(h))
		})
	}
}

func TestPressed(t *testing.T) {
	s := gamepad.InputState{Buttons: gamepad.ButtonA | gamepad.ButtonX}
	assert.True(t, s.Pressed(gamepad.ButtonA))
	assert.True(t, s.Pressed(gamepad.ButtonA|gamepad.ButtonX))
	assert.False(t, s.Pressed(gamepad.ButtonB))
	assert.False(t, s.Pressed(gamepad.ButtonA|gamepad.ButtonB))
	assert.False(t, s.Pressed(0))
}

func TestFormatReport(t *testing.T) {
	s := gamepad.InputState{
		DPad:        gamepad.DPadUp,
		Buttons:     gamepad.ButtonA | gamepad.ButtonThumbR,
		LX:          -511,
		LY:          12,
		RX:          0,
		RY:          512,
		Brake:       1023,
		Throttle:    7,
		MiscButtons: gamepad.MiscStart,
		GyroX:       1,
		GyroY:       -2,
		GyroZ:       3,
		AccelX:      -4,
		AccelY:      5,
		AccelZ:      -6,
	}
	want := "idx=2, dpad: 0x01, buttons: 0x0201, axis L: -511,   12, axis R:    0,  512, brake: 1023, throttle:    7, " +
		"misc: 0x04, gyro x:     1 y:    -2 z:     3, accel x:    -4 y:     5 z:    -6"
	assert.Equal(t, want, s.FormatReport(2))
}

func TestButtonByName(t *testing.T) {
	mask, err := gamepad.ButtonByName(" X ")
	require.NoError(t, err)
	assert.Equal(t, gamepad.ButtonX, mask)

	mask, err = gamepad.ButtonByName("shoulder-r")
	require.NoError(t, err)
	assert.Equal(t, gamepad.ButtonShoulderR, mask)

	_, err = gamepad.ButtonByName("start")
	assert.Error(t, err)
}
