//go:build !linux

package jsdev

import (
	"errors"
	"log/slog"

	"github.com/padservo/padservo/dispatch"
)

// Open is only supported on Linux.
func Open(_ Config, _ *slog.Logger) (dispatch.Transport, error) {
	return nil, errors.New("joystick transport is only supported on linux")
}
