package actuation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padservo/padservo/actuation"
)

func TestAxisToAngle(t *testing.T) {
	type testCase struct {
		name     string
		x        int32
		deadZone int32
		want     int
	}
	cases := []testCase{
		{"center", 0, actuation.DefaultDeadZone, 90},
		{"inside dead-zone positive", 20, actuation.DefaultDeadZone, 90},
		{"inside dead-zone negative", -34, actuation.DefaultDeadZone, 90},
		{"dead-zone edge positive", 35, actuation.DefaultDeadZone, 96},
		{"dead-zone edge negative", -35, actuation.DefaultDeadZone, 83},
		{"full left", -511, actuation.DefaultDeadZone, 0},
		{"full right", 512, actuation.DefaultDeadZone, 180},
		{"half right", 100, actuation.DefaultDeadZone, 107},
		{"half left", -100, actuation.DefaultDeadZone, 72},
		{"below range clamps", -4000, actuation.DefaultDeadZone, 0},
		{"above range clamps", 4000, actuation.DefaultDeadZone, 180},
		{"no dead-zone truncates", 0, 0, 89},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, actuation.AxisToAngle(tc.x, tc.deadZone))
		})
	}
}

func TestAxisToAngleMonotonic(t *testing.T) {
	prev := actuation.AxisToAngle(-511, actuation.DefaultDeadZone)
	for x := int32(-510); x <= 512; x++ {
		a := actuation.AxisToAngle(x, actuation.DefaultDeadZone)
		assert.GreaterOrEqual(t, a, prev, "x=%d", x)
		assert.LessOrEqual(t, a, actuation.MaxAngle)
		prev = a
	}
}
