// Package actuator defines the servo contract and a logging servo for dry runs.
package actuator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/padservo/padservo/internal/log"
)

// Servo positions a single hobby servo.
type Servo interface {
	// SetAngle moves the servo to angle degrees (0..180). Calling it again
	// with the same angle is harmless.
	SetAngle(angle int) error
	Close() error
}

// ValidateAngle rejects angles outside 0..180.
func ValidateAngle(angle int) error {
	if angle < 0 || angle > 180 {
		return fmt.Errorf("servo angle %d out of range 0..180", angle)
	}
	return nil
}

// LogServo logs angle changes instead of driving hardware.
type LogServo struct {
	logger *slog.Logger
	mu     sync.Mutex
	last   int
	writes uint64
}

// NewLogServo returns a LogServo. Repeated writes of the same angle are
// counted but only logged at trace level.
func NewLogServo(logger *slog.Logger) *LogServo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogServo{logger: logger, last: -1}
}

func (s *LogServo) SetAngle(angle int) error {
	if err := ValidateAngle(angle); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if angle == s.last {
		s.logger.Log(context.Background(), log.LevelTrace, "servo angle unchanged", "angle", angle)
		return nil
	}
	s.last = angle
	s.logger.Info("servo angle", "angle", angle)
	return nil
}

// Writes returns how many SetAngle calls succeeded.
func (s *LogServo) Writes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *LogServo) Close() error { return nil }
