// Package actuation turns decoded gamepad state into servo and feedback commands.
package actuation

import "github.com/padservo/padservo/controller/gamepad"

// Servo angle bounds in degrees.
const (
	MinAngle    = 0
	MaxAngle    = 180
	CenterAngle = 90
)

// DefaultDeadZone is the stick deflection below which the axis reads as centered.
const DefaultDeadZone = 35

// AxisToAngle maps a stick axis reading in [gamepad.AxisMin, gamepad.AxisMax]
// to a servo angle. Readings inside the dead-zone collapse to CenterAngle;
// everything else goes through an integer affine map that truncates toward
// zero, then is clamped to [MinAngle, MaxAngle].
func AxisToAngle(x int32, deadZone int32) int {
	if abs(x) < deadZone {
		return CenterAngle
	}
	angle := mapRange(int64(x), gamepad.AxisMin, gamepad.AxisMax, MinAngle, MaxAngle)
	if angle < MinAngle {
		return MinAngle
	}
	if angle > MaxAngle {
		return MaxAngle
	}
	return int(angle)
}

func mapRange(x, inMin, inMax, outMin, outMax int64) int64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
