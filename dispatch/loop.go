// Package dispatch runs the tick loop that routes controller frames to the
// actuation mapper, the policy hooks and the report sink.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/padservo/padservo/actuation"
	"github.com/padservo/padservo/actuator"
	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
	"github.com/padservo/padservo/internal/log"
	"github.com/padservo/padservo/slots"
)

// Config represents the dispatch loop configuration.
type Config struct {
	TickInterval     time.Duration `help:"Dispatch tick period" default:"10ms" env:"PADSERVO_TICK_INTERVAL"`
	BalanceThreshold uint16        `help:"Top-left pressure above which the balance hook fires" default:"10000" env:"PADSERVO_BALANCE_THRESHOLD"`
}

// Phase is the loop's state machine position.
type Phase uint8

const (
	Idle Phase = iota
	Processing
)

func (p Phase) String() string {
	if p == Processing {
		return "processing"
	}
	return "idle"
}

// Stats counts loop activity since creation.
type Stats struct {
	Ticks       uint64 // polls issued
	Passes      uint64 // polls that reported new data
	Processed   uint64 // controller frames routed
	Unsupported uint64 // frames from unclassifiable controllers
	Failures    uint64 // slots whose processing panicked
}

// Loop is the single-threaded dispatch loop. It owns the slot registry and
// the actuator command state.
type Loop struct {
	cfg       Config
	transport Transport
	registry  *slots.Registry
	mapper    *actuation.Mapper
	servo     actuator.Servo
	state     *actuation.State
	hooks     Hooks
	reports   log.ReportLogger
	logger    *slog.Logger
	phase     Phase
	stats     Stats
}

// New creates a Loop. reports may be nil to discard diagnostic lines.
func New(cfg Config, t Transport, servo actuator.Servo, mapper *actuation.Mapper, logger *slog.Logger, reports log.ReportLogger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if reports == nil {
		reports = log.NewReport(nil, false)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 10 * time.Millisecond
	}
	return &Loop{
		cfg:       cfg,
		transport: t,
		registry:  slots.New(logger),
		mapper:    mapper,
		servo:     servo,
		state:     actuation.NewState(),
		reports:   reports,
		logger:    logger,
	}
}

// SetHooks installs the policy hooks. Call before Run.
func (l *Loop) SetHooks(h Hooks) {
	l.hooks = h
}

// Registry exposes the slot table.
func (l *Loop) Registry() *slots.Registry { return l.registry }

// State exposes the actuator command state.
func (l *Loop) State() *actuation.State { return l.state }

// Phase reports where the state machine currently is.
func (l *Loop) Phase() Phase { return l.phase }

// Stats returns a copy of the activity counters.
func (l *Loop) Stats() Stats { return l.stats }

// OnConnect implements Listener.
func (l *Loop) OnConnect(h controller.Handle) {
	if _, err := l.registry.Connect(h); err != nil {
		l.logger.Debug("connect not tracked", "id", h.ID(), "error", err)
	}
}

// OnDisconnect implements Listener.
func (l *Loop) OnDisconnect(h controller.Handle) {
	if _, err := l.registry.Disconnect(h); err != nil {
		l.logger.Debug("disconnect not tracked", "id", h.ID(), "error", err)
	}
}

// Run centers the servo, starts the transport and ticks until ctx is done or
// the transport is exhausted. The transport is closed on return; the servo is
// left to the caller.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.servo.SetAngle(l.state.ServoAngle); err != nil {
		return fmt.Errorf("initial servo write: %w", err)
	}
	if err := l.transport.Start(l); err != nil {
		return fmt.Errorf("start transport: %w", err)
	}
	defer func() {
		if err := l.transport.Close(); err != nil {
			l.logger.Warn("failed to close transport", "error", err)
		}
	}()

	l.logger.Info("dispatch loop running", "tick", l.cfg.TickInterval, "slots", l.registry.Capacity())

	ticker := time.NewTicker(l.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("dispatch loop stopped", "ticks", l.stats.Ticks, "processed", l.stats.Processed)
			return nil
		case <-ticker.C:
			if _, err := l.Tick(ctx); err != nil {
				if errors.Is(err, ErrExhausted) {
					l.logger.Info("transport exhausted", "ticks", l.stats.Ticks, "processed", l.stats.Processed)
					return nil
				}
				return err
			}
		}
	}
}

// Tick polls the transport once and, if it reports new data, processes every
// connected slot with a fresh frame in index order. It returns whether a processing pass ran.
// Poll failures other than ErrExhausted are logged and treated as no data.
func (l *Loop) Tick(ctx context.Context) (bool, error) {
	l.stats.Ticks++
	fresh, err := l.transport.Poll(ctx)
	if err != nil {
		if errors.Is(err, ErrExhausted) {
			return false, err
		}
		l.logger.Warn("transport poll failed", "error", err)
		return false, nil
	}
	if !fresh {
		return false, nil
	}

	l.phase = Processing
	defer func() { l.phase = Idle }()
	l.stats.Passes++

	for _, e := range l.registry.Occupied() {
		l.processSlot(e)
	}
	return true, nil
}

func (l *Loop) processSlot(e slots.Entry) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.Failures++
			l.logger.Error("controller processing failed", "index", e.Index, "panic", r)
		}
	}()

	if !e.Handle.Connected() || !e.Handle.HasData() {
		return
	}

	switch controller.Classify(e.Handle) {
	case controller.Gamepad:
		l.processGamepad(e)
	case controller.Mouse:
		l.processMouse(e)
	case controller.Keyboard:
		l.processKeyboard(e)
	case controller.BalanceBoard:
		l.processBalanceBoard(e)
	default:
		l.stats.Unsupported++
		l.logger.Warn("unsupported controller",
			"index", e.Index,
			"id", e.Handle.ID(),
			"capabilities", e.Handle.Capabilities())
		return
	}
	l.stats.Processed++
}

func (l *Loop) processGamepad(e slots.Entry) {
	s := gamepad.Decode(e.Handle)
	cmd := l.mapper.Map(l.state, s)
	if err := l.mapper.Apply(cmd, l.servo, e.Handle); err != nil {
		l.logger.Warn("actuation failed", "index", e.Index, "error", err)
	}
	l.reports.Report(s.FormatReport(e.Index))
}

func (l *Loop) processMouse(e slots.Entry) {
	s := mouse.Decode(e.Handle)
	if dir := s.ScrollDirection(); dir != 0 && l.hooks.Scroll != nil {
		l.hooks.Scroll(e.Index, dir, s)
	}
	l.reports.Report(s.FormatReport(e.Index))
}

func (l *Loop) processKeyboard(e slots.Entry) {
	s := keyboard.Decode(e.Handle)
	if !s.Any() {
		return
	}
	if l.hooks.Keys != nil {
		l.hooks.Keys(e.Index, s)
	}
	l.reports.Report(s.FormatReport(e.Index))
}

func (l *Loop) processBalanceBoard(e slots.Entry) {
	s := balanceboard.Decode(e.Handle)
	if s.TopLeft > l.cfg.BalanceThreshold && l.hooks.Balance != nil {
		l.hooks.Balance(e.Index, s)
	}
	l.reports.Report(s.FormatReport(e.Index))
}
