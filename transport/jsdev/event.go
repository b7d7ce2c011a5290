// Package jsdev is a transport over the Linux joystick API (/dev/input/jsN).
// Pairing and the wireless link are left to the kernel and BlueZ; this
// package only discovers joystick nodes and folds their state into gamepad
// frames. Button and axis numbering follow the xpad layout.
package jsdev

import (
	"strconv"
	"strings"

	"github.com/0xcafed00d/joystick"

	"github.com/padservo/padservo/controller/gamepad"
)

// Config represents the joystick transport configuration.
type Config struct {
	OpenRetries int `help:"Polls to keep retrying a node that is not readable yet" default:"100" env:"PADSERVO_JSDEV_OPEN_RETRIES"`
}

// xpad axis numbering
const (
	axisLX = iota
	axisLY
	axisLT
	axisRX
	axisRY
	axisRT
	axisHatX
	axisHatY
)

// xpad button numbering to gamepad and misc bitmasks
var (
	buttonMap = map[uint8]uint16{
		0:  gamepad.ButtonA,
		1:  gamepad.ButtonB,
		2:  gamepad.ButtonX,
		3:  gamepad.ButtonY,
		4:  gamepad.ButtonShoulderL,
		5:  gamepad.ButtonShoulderR,
		9:  gamepad.ButtonThumbL,
		10: gamepad.ButtonThumbR,
	}
	miscMap = map[uint8]uint8{
		6: gamepad.MiscSelect,
		7: gamepad.MiscStart,
		8: gamepad.MiscSystem,
	}
)

// scaleAxis maps a joystick axis (-32768..32767) onto -511..512.
func scaleAxis(v int16) int32 {
	return (int32(v)+32768)*1023/65535 + gamepad.AxisMin
}

// scaleTrigger maps a joystick trigger axis (-32768..32767) onto 0..1023.
func scaleTrigger(v int16) int32 {
	return (int32(v) + 32768) * gamepad.TriggerMax / 65535
}

// fold converts a joystick snapshot into a gamepad frame. Axes the device
// does not report stay at rest.
func fold(s joystick.State) gamepad.InputState {
	var st gamepad.InputState
	for n, v := range s.AxisData {
		raw := int16(max(min(v, 32767), -32768))
		switch n {
		case axisLX:
			st.LX = scaleAxis(raw)
		case axisLY:
			st.LY = scaleAxis(raw)
		case axisRX:
			st.RX = scaleAxis(raw)
		case axisRY:
			st.RY = scaleAxis(raw)
		case axisLT:
			st.Brake = scaleTrigger(raw)
		case axisRT:
			st.Throttle = scaleTrigger(raw)
		case axisHatX:
			st.DPad = hat(st.DPad, raw, gamepad.DPadLeft, gamepad.DPadRight)
		case axisHatY:
			st.DPad = hat(st.DPad, raw, gamepad.DPadUp, gamepad.DPadDown)
		}
	}
	for bit := uint8(0); bit < 32; bit++ {
		if s.Buttons&(1<<bit) == 0 {
			continue
		}
		if mask, ok := buttonMap[bit]; ok {
			st.Buttons |= mask
		} else if mask, ok := miscMap[bit]; ok {
			st.MiscButtons |= mask
		}
	}
	return st
}

// held reports whether any digital input is down. The joystick API only
// reports changes, so a held button keeps its device fresh every poll.
func held(st gamepad.InputState) bool {
	return st.Buttons != 0 || st.MiscButtons != 0 || st.DPad != 0
}

func hat(dpad uint8, v int16, neg, pos uint8) uint8 {
	dpad &^= neg | pos
	switch {
	case v < 0:
		dpad |= neg
	case v > 0:
		dpad |= pos
	}
	return dpad
}

// joystickIndex returns N for a node named jsN.
func joystickIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "js")
	if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isJoystick(name string) bool {
	_, ok := joystickIndex(name)
	return ok
}

func escapeString(src []byte) string {
	n := 0
	for _, b := range src {
		if b != 0 {
			src[n] = b
			n++
		}
	}
	return string(src[:n])
}
