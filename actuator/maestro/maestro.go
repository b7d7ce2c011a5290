// Package maestro drives a servo through a Pololu Maestro servo controller
// attached over a serial port, using the compact serial protocol.
package maestro

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/padservo/padservo/actuator"
)

const (
	cmdSetTarget = 0x84

	// targets are 14 bits of quarter-microseconds
	maxPulseWidth = 0x3FFF * (time.Microsecond / 4)
)

// Config represents the serial servo configuration.
type Config struct {
	Port     string        `help:"Serial device of the Maestro command port" default:"/dev/ttyACM0" env:"PADSERVO_MAESTRO_PORT"`
	Baud     int           `help:"Serial baud rate (ignored by USB command ports)" default:"9600" env:"PADSERVO_MAESTRO_BAUD"`
	Channel  uint8         `help:"Maestro channel the servo is wired to" default:"0" env:"PADSERVO_MAESTRO_CHANNEL"`
	MinPulse time.Duration `help:"Pulse width at 0 degrees" default:"500us" env:"PADSERVO_MAESTRO_MIN_PULSE"`
	MaxPulse time.Duration `help:"Pulse width at 180 degrees" default:"2400us" env:"PADSERVO_MAESTRO_MAX_PULSE"`
}

// Servo implements actuator.Servo over a Maestro command port.
type Servo struct {
	w      io.WriteCloser
	cfg    Config
	logger *slog.Logger
	mu     sync.Mutex
}

var _ actuator.Servo = (*Servo)(nil)

// Open opens the configured serial port and returns a Servo writing to it.
func Open(cfg Config, logger *slog.Logger) (*Servo, error) {
	port, err := serial.Open(cfg.Port, &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open maestro port %s: %w", cfg.Port, err)
	}
	s, err := New(port, cfg, logger)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already open command port.
func New(w io.WriteCloser, cfg Config, logger *slog.Logger) (*Servo, error) {
	if cfg.MinPulse <= 0 || cfg.MaxPulse <= cfg.MinPulse {
		return nil, fmt.Errorf("invalid pulse range %s..%s", cfg.MinPulse, cfg.MaxPulse)
	}
	if cfg.MaxPulse > maxPulseWidth {
		return nil, fmt.Errorf("max pulse %s exceeds the Maestro limit of %s", cfg.MaxPulse, maxPulseWidth)
	}
	if cfg.Channel > 23 {
		return nil, fmt.Errorf("maestro channel %d out of range 0..23", cfg.Channel)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Servo{w: w, cfg: cfg, logger: logger}, nil
}

// SetAngle sends a Set Target command for angle.
func (s *Servo) SetAngle(angle int) error {
	if err := actuator.ValidateAngle(angle); err != nil {
		return err
	}
	pulse := PulseWidth(angle, s.cfg.MinPulse, s.cfg.MaxPulse)
	frame := SetTargetFrame(s.cfg.Channel, quarterMicros(pulse))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(frame); err != nil {
		return fmt.Errorf("write set target: %w", err)
	}
	s.logger.Debug("maestro set target", "channel", s.cfg.Channel, "angle", angle, "pulse", pulse)
	return nil
}

func (s *Servo) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}

// PulseWidth linearly interpolates the pulse width for angle between minPulse
// (0 degrees) and maxPulse (180 degrees).
func PulseWidth(angle int, minPulse, maxPulse time.Duration) time.Duration {
	return minPulse + (maxPulse-minPulse)*time.Duration(angle)/180
}

// SetTargetFrame encodes a compact-protocol Set Target command.
//
// Layout:
//
//	0: 0x84           - command
//	1: channel
//	2: target & 0x7F  - low 7 bits
//	3: target >> 7    - high 7 bits
//
// target is in quarter-microseconds.
func SetTargetFrame(channel uint8, target uint16) []byte {
	return []byte{
		cmdSetTarget,
		channel,
		byte(target & 0x7F),
		byte((target >> 7) & 0x7F),
	}
}

func quarterMicros(d time.Duration) uint16 {
	return uint16(d / (time.Microsecond / 4))
}
