// Package sim is a transport that replays a scripted controller session.
// It stands in for the wireless stack on a bench: no hardware, same loop.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/padservo/padservo/dispatch"
)

// Config represents the scenario transport configuration.
type Config struct {
	Scenario string `help:"Scenario file to replay (JSON, YAML or TOML)" type:"path" env:"PADSERVO_SIM_SCENARIO"`
	Loop     bool   `help:"Restart the scenario after its last step" env:"PADSERVO_SIM_LOOP"`
}

// Transport replays a Scenario, one poll per tick.
type Transport struct {
	scenario *Scenario
	loop     bool
	logger   *slog.Logger
	listener dispatch.Listener
	handles  map[string]*Handle
	order    []string
	tick     int
	next     int
}

var _ dispatch.Transport = (*Transport)(nil)

// Open loads cfg.Scenario and returns a Transport for it.
func Open(cfg Config, logger *slog.Logger) (*Transport, error) {
	if cfg.Scenario == "" {
		return nil, fmt.Errorf("no scenario file given (--sim.scenario)")
	}
	sc, err := LoadScenario(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	return New(sc, cfg.Loop, logger), nil
}

// New returns a Transport replaying sc.
func New(sc *Scenario, loop bool, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t := &Transport{
		scenario: sc,
		loop:     loop,
		logger:   logger,
		handles:  make(map[string]*Handle, len(sc.Controllers)),
	}
	for _, spec := range sc.Controllers {
		t.handles[spec.ID] = newHandle(spec, logger)
		t.order = append(t.order, spec.ID)
	}
	return t
}

// Handle returns the simulated handle for id, or nil.
func (t *Transport) Handle(id string) *Handle {
	return t.handles[id]
}

func (t *Transport) Start(l dispatch.Listener) error {
	if l == nil {
		return fmt.Errorf("nil listener")
	}
	t.listener = l
	t.logger.Info("replaying scenario", "controllers", len(t.scenario.Controllers), "steps", len(t.scenario.Steps), "loop", t.loop)
	return nil
}

// Poll applies every step due on the current tick. It reports new data when
// at least one frame was applied, and ErrExhausted once the last step has
// been played and looping is off.
func (t *Transport) Poll(_ context.Context) (bool, error) {
	if t.listener == nil {
		return false, fmt.Errorf("transport not started")
	}
	for _, h := range t.handles {
		h.fresh = false
	}
	if t.next >= len(t.scenario.Steps) {
		if !t.loop || len(t.scenario.Steps) == 0 {
			return false, dispatch.ErrExhausted
		}
		t.restart()
	}

	fresh := false
	for t.next < len(t.scenario.Steps) && t.scenario.Steps[t.next].At <= t.tick {
		if t.apply(t.scenario.Steps[t.next]) {
			fresh = true
		}
		t.next++
	}
	t.tick++
	return fresh, nil
}

func (t *Transport) apply(st Step) bool {
	for _, id := range st.Connect {
		h := t.handles[id]
		if h.connected {
			continue
		}
		h.connected = true
		t.listener.OnConnect(h)
	}
	fresh := false
	for _, f := range st.Frames {
		h := t.handles[f.ID]
		if !h.connected {
			t.logger.Debug("frame for disconnected controller dropped", "id", f.ID, "tick", t.tick)
			continue
		}
		h.setFrame(f)
		fresh = true
	}
	for _, id := range st.Disconnect {
		h := t.handles[id]
		if !h.connected {
			continue
		}
		h.connected = false
		h.fresh = false
		t.listener.OnDisconnect(h)
	}
	return fresh
}

// restart disconnects everything still connected and rewinds to tick 0.
func (t *Transport) restart() {
	for _, id := range t.order {
		h := t.handles[id]
		if h.connected {
			h.connected = false
			t.listener.OnDisconnect(h)
		}
	}
	t.tick = 0
	t.next = 0
	t.logger.Debug("scenario restarted")
}

// Close disconnects every connected controller.
func (t *Transport) Close() error {
	if t.listener == nil {
		return nil
	}
	for _, id := range t.order {
		h := t.handles[id]
		if h.connected {
			h.connected = false
			t.listener.OnDisconnect(h)
		}
	}
	return nil
}
