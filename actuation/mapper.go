package actuation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/padservo/padservo/actuator"
	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/gamepad"
)

// Rumble is a single dual-motor rumble request.
type Rumble struct {
	DelayMs    uint16 `help:"Delay before the rumble starts, in milliseconds" default:"0"`
	DurationMs uint16 `help:"Rumble duration, in milliseconds" default:"250"`
	Weak       uint8  `help:"Weak (high frequency) motor intensity" default:"128"`
	Strong     uint8  `help:"Strong (low frequency) motor intensity" default:"64"`
}

// Config selects the buttons that drive each action.
type Config struct {
	DeadZone      int32  `help:"Left stick dead-zone around center" default:"35" env:"PADSERVO_MAPPING_DEAD_ZONE"`
	CenterButton  string `help:"Button that forces the servo to center while held" default:"x" env:"PADSERVO_MAPPING_CENTER_BUTTON"`
	CycleButton   string `help:"Button that cycles the light bar color" default:"a" env:"PADSERVO_MAPPING_CYCLE_BUTTON"`
	PatternButton string `help:"Button that advances the player LED pattern" default:"b" env:"PADSERVO_MAPPING_PATTERN_BUTTON"`
	RumbleButton  string `help:"Button that triggers a rumble" default:"x" env:"PADSERVO_MAPPING_RUMBLE_BUTTON"`
	Rumble        Rumble `embed:"" prefix:"rumble."`
}

// DefaultConfig mirrors the flag defaults.
func DefaultConfig() Config {
	return Config{
		DeadZone:      DefaultDeadZone,
		CenterButton:  "x",
		CycleButton:   "a",
		PatternButton: "b",
		RumbleButton:  "x",
		Rumble:        Rumble{DelayMs: 0, DurationMs: 250, Weak: 0x80, Strong: 0x40},
	}
}

// Commands is everything one gamepad frame asks for. Nil fields mean the
// action did not fire this tick.
type Commands struct {
	Angle      int
	Color      *Color
	PlayerLEDs *uint8
	Rumble     *Rumble
}

// Mapper computes Commands from gamepad state.
type Mapper struct {
	deadZone      int32
	centerButton  uint16
	cycleButton   uint16
	patternButton uint16
	rumbleButton  uint16
	rumble        Rumble
	logger        *slog.Logger
}

// NewMapper resolves the configured button names.
func NewMapper(cfg Config, logger *slog.Logger) (*Mapper, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.DeadZone < 0 {
		return nil, fmt.Errorf("dead-zone must not be negative, got %d", cfg.DeadZone)
	}
	m := &Mapper{deadZone: cfg.DeadZone, rumble: cfg.Rumble, logger: logger}
	for _, b := range []struct {
		name string
		dst  *uint16
	}{
		{cfg.CenterButton, &m.centerButton},
		{cfg.CycleButton, &m.cycleButton},
		{cfg.PatternButton, &m.patternButton},
		{cfg.RumbleButton, &m.rumbleButton},
	} {
		mask, err := gamepad.ButtonByName(b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = mask
	}
	return m, nil
}

// Map computes the commands for one frame and records the servo angle and
// LED counters in st. Button actions are level-triggered: they fire on every
// frame the button is held.
func (m *Mapper) Map(st *State, s gamepad.InputState) Commands {
	angle := AxisToAngle(s.LX, m.deadZone)
	if s.Pressed(m.centerButton) {
		angle = CenterAngle
	}
	st.ServoAngle = angle

	cmd := Commands{Angle: angle}
	if s.Pressed(m.cycleButton) {
		c := st.nextColor()
		cmd.Color = &c
	}
	if s.Pressed(m.patternButton) {
		leds := st.nextPlayerLEDs()
		cmd.PlayerLEDs = &leds
	}
	if s.Pressed(m.rumbleButton) {
		r := m.rumble
		cmd.Rumble = &r
	}
	return cmd
}

// Apply writes the angle to the servo and forwards feedback commands to h if
// it accepts them. Every failure is returned joined; none stops the others.
func (m *Mapper) Apply(cmd Commands, servo actuator.Servo, h controller.Handle) error {
	var errs []error
	if err := servo.SetAngle(cmd.Angle); err != nil {
		errs = append(errs, fmt.Errorf("set servo angle: %w", err))
	}
	if cmd.Color == nil && cmd.PlayerLEDs == nil && cmd.Rumble == nil {
		return errors.Join(errs...)
	}

	fb, ok := h.(controller.Feedback)
	if !ok {
		m.logger.Debug("controller does not accept feedback", "id", h.ID())
		return errors.Join(errs...)
	}
	if c := cmd.Color; c != nil {
		if err := fb.SetColorLED(c.R, c.G, c.B); err != nil {
			errs = append(errs, fmt.Errorf("set color led: %w", err))
		}
	}
	if leds := cmd.PlayerLEDs; leds != nil {
		if err := fb.SetPlayerLEDs(*leds); err != nil {
			errs = append(errs, fmt.Errorf("set player leds: %w", err))
		}
	}
	if r := cmd.Rumble; r != nil {
		if err := fb.PlayDualRumble(r.DelayMs, r.DurationMs, r.Weak, r.Strong); err != nil {
			errs = append(errs, fmt.Errorf("play rumble: %w", err))
		}
	}
	return errors.Join(errs...)
}
