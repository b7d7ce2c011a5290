package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/padservo/padservo/actuation"
	"github.com/padservo/padservo/actuator"
	"github.com/padservo/padservo/actuator/maestro"
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
	"github.com/padservo/padservo/dispatch"
	"github.com/padservo/padservo/internal/log"
	"github.com/padservo/padservo/transport/jsdev"
	"github.com/padservo/padservo/transport/sim"
)

type Run struct {
	Dispatch  dispatch.Config  `embed:""`
	Transport string           `help:"Controller transport" enum:"sim,jsdev" default:"jsdev" env:"PADSERVO_TRANSPORT"`
	Sim       sim.Config       `embed:"" prefix:"sim."`
	Jsdev     jsdev.Config     `embed:"" prefix:"jsdev."`
	Servo     string           `help:"Servo backend" enum:"log,maestro" default:"log" env:"PADSERVO_SERVO"`
	Maestro   maestro.Config   `embed:"" prefix:"maestro."`
	Mapping   actuation.Config `embed:"" prefix:"mapping."`
	WatchKeys []string         `help:"Keys logged individually when held" default:"A,LeftShift,LeftArrow" env:"PADSERVO_WATCH_KEYS"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, reports log.ReportLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.StartLoop(ctx, logger, reports)
}

func (r *Run) StartLoop(ctx context.Context, logger *slog.Logger, reports log.ReportLogger) error {
	mapper, err := actuation.NewMapper(r.Mapping, logger)
	if err != nil {
		return fmt.Errorf("invalid mapping: %w", err)
	}
	hooks, err := r.hooks(logger)
	if err != nil {
		return err
	}

	servo, err := r.openServo(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := servo.Close(); err != nil {
			logger.Warn("Failed to close servo", "error", err)
		}
	}()

	transport, err := r.openTransport(logger)
	if err != nil {
		return err
	}

	logger.Info("Starting PADSERVO", "transport", r.Transport, "servo", r.Servo)
	loop := dispatch.New(r.Dispatch, transport, servo, mapper, logger, reports)
	loop.SetHooks(hooks)
	return loop.Run(ctx)
}

func (r *Run) openServo(logger *slog.Logger) (actuator.Servo, error) {
	switch r.Servo {
	case "maestro":
		s, err := maestro.Open(r.Maestro, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open maestro servo: %w", err)
		}
		return s, nil
	default:
		return actuator.NewLogServo(logger), nil
	}
}

func (r *Run) openTransport(logger *slog.Logger) (dispatch.Transport, error) {
	switch r.Transport {
	case "sim":
		t, err := sim.Open(r.Sim, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		return t, nil
	default:
		t, err := jsdev.Open(r.Jsdev, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open joystick transport: %w", err)
		}
		return t, nil
	}
}

// hooks builds the default policy hooks: scroll and balance events are
// logged, and the watched keys are logged one line each.
func (r *Run) hooks(logger *slog.Logger) (dispatch.Hooks, error) {
	watch := make([]keyboard.Key, 0, len(r.WatchKeys))
	for _, name := range r.WatchKeys {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := keyboard.KeyByName(name)
		if err != nil {
			return dispatch.Hooks{}, fmt.Errorf("invalid watch key: %w", err)
		}
		watch = append(watch, k)
	}

	return dispatch.Hooks{
		Scroll: func(slot, dir int, s mouse.InputState) {
			logger.Debug("Mouse scroll", "index", slot, "direction", dir, "wheel", s.ScrollWheel)
		},
		Balance: func(slot int, s balanceboard.InputState) {
			logger.Debug("Balance board pressure", "index", slot, "topLeft", s.TopLeft)
		},
		Keys: func(slot int, s keyboard.Snapshot) {
			for _, k := range watch {
				if s.Pressed(k) {
					logger.Info("Key pressed", "index", slot, "key", k.String())
				}
			}
		},
	}, nil
}
