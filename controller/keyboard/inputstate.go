// Package keyboard decodes keyboard frames into a closed key space.
package keyboard

import (
	"fmt"
	"strings"

	"github.com/padservo/padservo/controller"
)

// InputState is the raw keyboard frame a transport hands over.
// Internally uses a 256-bit bitmap indexed by HID usage code.
type InputState struct {
	Modifiers uint8     // bit 0-7: LCtrl, LShift, LAlt, LMeta, RCtrl, RShift, RAlt, RMeta
	KeyBitmap [32]uint8 // 256 bits for HID usage codes 0x00-0xFF
}

// Press marks k as held. Modifier keys set the matching Modifiers bit.
func (st *InputState) Press(k Key) {
	if k.IsModifier() {
		st.Modifiers |= modifierMasks[k-firstModifier]
		return
	}
	st.KeyBitmap[k/8] |= 1 << (k % 8)
}

// IsPressed reports whether k is held in the raw frame.
func (st *InputState) IsPressed(k Key) bool {
	if k.IsModifier() {
		return st.Modifiers&modifierMasks[k-firstModifier] != 0
	}
	return st.KeyBitmap[k/8]&(1<<(k%8)) != 0
}

// Source is implemented by handles that carry keyboard frames.
type Source interface {
	KeyboardInput() InputState
}

// Snapshot is a decoded keyboard frame: pressed primary keys and pressed
// modifiers, each in ascending usage-code order.
type Snapshot struct {
	Keys      []Key
	Modifiers []Key
}

// Decode enumerates the key space against the handle's frame. Codes outside
// the key space are ignored.
func Decode(h controller.Handle) Snapshot {
	src, ok := h.(Source)
	if !ok {
		return Snapshot{}
	}
	st := src.KeyboardInput()

	var s Snapshot
	for k := firstKey; k <= lastKey; k++ {
		if st.IsPressed(k) {
			s.Keys = append(s.Keys, k)
		}
	}
	for k := firstModifier; k <= lastModifier; k++ {
		if st.IsPressed(k) {
			s.Modifiers = append(s.Modifiers, k)
		}
	}
	return s
}

// Any reports whether any key or modifier is held.
func (s Snapshot) Any() bool {
	return len(s.Keys) > 0 || len(s.Modifiers) > 0
}

// Pressed reports whether k is in either set.
func (s Snapshot) Pressed(k Key) bool {
	set := s.Keys
	if k.IsModifier() {
		set = s.Modifiers
	}
	for _, p := range set {
		if p == k {
			return true
		}
	}
	return false
}

// FormatReport renders the diagnostic line for this snapshot.
func (s Snapshot) FormatReport(idx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "idx=%d, Pressed keys: ", idx)
	for _, k := range s.Keys {
		b.WriteString(k.String())
		b.WriteByte(',')
	}
	for _, k := range s.Modifiers {
		b.WriteString(k.String())
		b.WriteByte(',')
	}
	return b.String()
}

// IsModifier reports whether k is one of the eight modifier keys.
func (k Key) IsModifier() bool {
	return k >= firstModifier && k <= lastModifier
}

// InKeySpace reports whether k is surfaced by Decode.
func (k Key) InKeySpace() bool {
	return (k >= firstKey && k <= lastKey) || k.IsModifier()
}

func (k Key) String() string {
	switch {
	case k >= firstKey && k <= lastKey:
		return keyNames[k-firstKey]
	case k.IsModifier():
		return modifierNames[k-firstModifier]
	default:
		return fmt.Sprintf("0x%02x", uint8(k))
	}
}

// KeyByName resolves a key name. Matching ignores case and spaces, so
// "LeftShift" and "left shift" both name KeyLeftShift.
func KeyByName(name string) (Key, error) {
	n := normalizeName(name)
	for _, k := range KeySpace() {
		if normalizeName(k.String()) == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// KeySpace lists every decodable key, primary keys first, then modifiers.
func KeySpace() []Key {
	out := make([]Key, 0, len(keyNames)+len(modifierNames))
	for k := firstKey; k <= lastKey; k++ {
		out = append(out, k)
	}
	for k := firstModifier; k <= lastModifier; k++ {
		out = append(out, k)
	}
	return out
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
