// Package testing holds fakes shared by package tests.
package testing

import (
	"context"
	"sync"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
	"github.com/padservo/padservo/dispatch"
)

// FeedbackCall is one recorded feedback request.
type FeedbackCall struct {
	Kind string // "color", "leds" or "rumble"
	Args []int
}

// Handle is a controllable controller.Handle. It implements every input
// source and controller.Feedback.
type Handle struct {
	HandleID  controller.ID
	Caps      controller.Capability
	Props     controller.Properties
	Online    bool
	Fresh     bool
	Panic     bool // panic when input is read
	PanicPoll bool // panic when freshness is checked
	FeedErr   error
	Gamepad   gamepad.InputState
	Mouse     mouse.InputState
	Keyboard  keyboard.InputState
	Balance   balanceboard.InputState

	mu    sync.Mutex
	calls []FeedbackCall
}

// NewHandle returns a connected handle with the given capabilities.
func NewHandle(id string, caps controller.Capability) *Handle {
	return &Handle{HandleID: controller.ID(id), Caps: caps, Online: true}
}

func (h *Handle) ID() controller.ID { return h.HandleID }
func (h *Handle) Connected() bool   { return h.Online }
func (h *Handle) HasData() bool {
	if h.PanicPoll {
		panic("fake controller poll failure")
	}
	return h.Fresh
}

func (h *Handle) Capabilities() controller.Capability { return h.Caps }
func (h *Handle) Properties() controller.Properties   { return h.Props }

func (h *Handle) GamepadInput() gamepad.InputState {
	h.maybePanic()
	return h.Gamepad
}

func (h *Handle) MouseInput() mouse.InputState {
	h.maybePanic()
	return h.Mouse
}

func (h *Handle) KeyboardInput() keyboard.InputState {
	h.maybePanic()
	return h.Keyboard
}

func (h *Handle) BalanceBoardInput() balanceboard.InputState {
	h.maybePanic()
	return h.Balance
}

func (h *Handle) maybePanic() {
	if h.Panic {
		panic("fake controller read failure")
	}
}

func (h *Handle) SetColorLED(r, g, b uint8) error {
	return h.record("color", int(r), int(g), int(b))
}

func (h *Handle) SetPlayerLEDs(mask uint8) error {
	return h.record("leds", int(mask))
}

func (h *Handle) PlayDualRumble(delayMs, durationMs uint16, weak, strong uint8) error {
	return h.record("rumble", int(delayMs), int(durationMs), int(weak), int(strong))
}

func (h *Handle) record(kind string, args ...int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, FeedbackCall{Kind: kind, Args: args})
	return h.FeedErr
}

// Calls returns the recorded feedback requests.
func (h *Handle) Calls() []FeedbackCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]FeedbackCall(nil), h.calls...)
}

// BareHandle exposes a Handle without controller.Feedback.
type BareHandle struct {
	h *Handle
}

// NoFeedback wraps h so it no longer accepts feedback.
func NoFeedback(h *Handle) *BareHandle { return &BareHandle{h: h} }

func (b *BareHandle) ID() controller.ID                   { return b.h.ID() }
func (b *BareHandle) Connected() bool                     { return b.h.Connected() }
func (b *BareHandle) HasData() bool                       { return b.h.HasData() }
func (b *BareHandle) Capabilities() controller.Capability { return b.h.Capabilities() }
func (b *BareHandle) Properties() controller.Properties   { return b.h.Properties() }
func (b *BareHandle) GamepadInput() gamepad.InputState    { return b.h.GamepadInput() }

// Servo records every angle written to it.
type Servo struct {
	Err    error
	Angles []int
	Closed bool
}

func (s *Servo) SetAngle(angle int) error {
	s.Angles = append(s.Angles, angle)
	return s.Err
}

func (s *Servo) Close() error {
	s.Closed = true
	return nil
}

// Last returns the most recent angle, or -1.
func (s *Servo) Last() int {
	if len(s.Angles) == 0 {
		return -1
	}
	return s.Angles[len(s.Angles)-1]
}

// Step is one scripted Poll result.
type Step struct {
	Connect    []controller.Handle
	Disconnect []controller.Handle
	Fresh      bool
	Err        error
	Before     func() // runs first, e.g. to mark handles fresh
}

// Transport replays Steps, one per Poll, then reports dispatch.ErrExhausted.
type Transport struct {
	Steps    []Step
	StartErr error
	Started  bool
	Closed   bool

	listener dispatch.Listener
	next     int
}

func (t *Transport) Start(l dispatch.Listener) error {
	if t.StartErr != nil {
		return t.StartErr
	}
	t.listener = l
	t.Started = true
	return nil
}

func (t *Transport) Poll(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if t.next >= len(t.Steps) {
		return false, dispatch.ErrExhausted
	}
	s := t.Steps[t.next]
	t.next++
	if s.Before != nil {
		s.Before()
	}
	for _, h := range s.Connect {
		t.listener.OnConnect(h)
	}
	for _, h := range s.Disconnect {
		t.listener.OnDisconnect(h)
	}
	return s.Fresh, s.Err
}

func (t *Transport) Close() error {
	t.Closed = true
	return nil
}
