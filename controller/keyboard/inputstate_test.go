package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/keyboard"
	th "github.com/padservo/padservo/internal/testing"
)

func kbd(keys ...keyboard.Key) *th.Handle {
	h := th.NewHandle("kbd", controller.CapKeyboard)
	for _, k := range keys {
		h.Keyboard.Press(k)
	}
	return h
}

func TestDecode(t *testing.T) {
	type testCase struct {
		name     string
		keys     []keyboard.Key
		wantKeys []keyboard.Key
		wantMods []keyboard.Key
	}
	cases := []testCase{
		{
			name: "nothing pressed",
		},
		{
			name:     "keys sorted by code",
			keys:     []keyboard.Key{keyboard.KeyLeftArrow, keyboard.KeyA, keyboard.KeyEnter},
			wantKeys: []keyboard.Key{keyboard.KeyA, keyboard.KeyEnter, keyboard.KeyLeftArrow},
		},
		{
			name:     "modifiers separate",
			keys:     []keyboard.Key{keyboard.KeyRightMeta, keyboard.KeyA, keyboard.KeyLeftShift},
			wantKeys: []keyboard.Key{keyboard.KeyA},
			wantMods: []keyboard.Key{keyboard.KeyLeftShift, keyboard.KeyRightMeta},
		},
		{
			name: "codes outside the key space ignored",
			keys: []keyboard.Key{0x01, 0x53, 0x90},
		},
		{
			name:     "boundaries",
			keys:     []keyboard.Key{keyboard.KeyA, keyboard.KeyUpArrow},
			wantKeys: []keyboard.Key{keyboard.KeyA, keyboard.KeyUpArrow},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := keyboard.Decode(kbd(tc.keys...))
			assert.Equal(t, tc.wantKeys, s.Keys)
			assert.Equal(t, tc.wantMods, s.Modifiers)
			assert.Equal(t, len(tc.wantKeys)+len(tc.wantMods) > 0, s.Any())
		})
	}
}

func TestDecodeWithoutSource(t *testing.T) {
	s := keyboard.Decode(th.NoFeedback(kbd(keyboard.KeyA)))
	assert.False(t, s.Any())
}

func TestPressed(t *testing.T) {
	s := keyboard.Decode(kbd(keyboard.KeyA, keyboard.KeyLeftShift))
	assert.True(t, s.Pressed(keyboard.KeyA))
	assert.True(t, s.Pressed(keyboard.KeyLeftShift))
	assert.False(t, s.Pressed(keyboard.KeyLeftArrow))
	assert.False(t, s.Pressed(keyboard.KeyRightShift))
}

func TestFormatReport(t *testing.T) {
	s := keyboard.Decode(kbd(keyboard.KeyA, keyboard.KeyLeftArrow, keyboard.KeyLeftShift))
	assert.Equal(t, "idx=0, Pressed keys: A,LeftArrow,Left Shift,", s.FormatReport(0))
}

func TestKeySpace(t *testing.T) {
	space := keyboard.KeySpace()
	require.Len(t, space, 79+8)
	assert.Equal(t, keyboard.KeyA, space[0])
	assert.Equal(t, keyboard.KeyUpArrow, space[78])
	assert.Equal(t, keyboard.KeyLeftControl, space[79])
	assert.Equal(t, keyboard.KeyRightMeta, space[len(space)-1])
	for _, k := range space {
		assert.True(t, k.InKeySpace(), k.String())
	}
	assert.False(t, keyboard.Key(0x53).InKeySpace())
}

func TestKeyByName(t *testing.T) {
	type testCase struct {
		name string
		want keyboard.Key
	}
	cases := []testCase{
		{"A", keyboard.KeyA},
		{"a", keyboard.KeyA},
		{"LeftShift", keyboard.KeyLeftShift},
		{"left shift", keyboard.KeyLeftShift},
		{"Left Arrow", keyboard.KeyLeftArrow},
		{"f12", keyboard.KeyF12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := keyboard.KeyByName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
		})
	}

	_, err := keyboard.KeyByName("hyper")
	assert.Error(t, err)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Spacebar", keyboard.KeySpacebar.String())
	assert.Equal(t, "Right Alt", keyboard.KeyRightAlt.String())
	assert.Equal(t, "0x90", keyboard.Key(0x90).String())
}

func TestModifierBits(t *testing.T) {
	var st keyboard.InputState
	st.Press(keyboard.KeyLeftShift)
	st.Press(keyboard.KeyRightAlt)
	assert.Equal(t, uint8(keyboard.ModLeftShift|keyboard.ModRightAlt), st.Modifiers)
	assert.True(t, st.IsPressed(keyboard.KeyLeftShift))
	assert.False(t, st.IsPressed(keyboard.KeyLeftControl))

	st = keyboard.InputState{Modifiers: keyboard.ModLeftCtrl | keyboard.ModRightMeta}
	assert.True(t, st.IsPressed(keyboard.KeyLeftControl))
	assert.True(t, st.IsPressed(keyboard.KeyRightMeta))
	assert.False(t, st.IsPressed(keyboard.KeyRightShift))
}
