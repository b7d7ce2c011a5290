package sim

import (
	"log/slog"
	"sync"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/balanceboard"
	"github.com/padservo/padservo/controller/gamepad"
	"github.com/padservo/padservo/controller/keyboard"
	"github.com/padservo/padservo/controller/mouse"
)

// maxFeedbackHistory bounds the feedback kept per handle.
const maxFeedbackHistory = 256

// FeedbackKind names an outbound command.
type FeedbackKind string

const (
	FeedbackColor  FeedbackKind = "color"
	FeedbackLEDs   FeedbackKind = "leds"
	FeedbackRumble FeedbackKind = "rumble"
)

// FeedbackEvent is one outbound command received by a simulated controller.
type FeedbackEvent struct {
	Kind    FeedbackKind
	R, G, B uint8
	LEDs    uint8

	DelayMs, DurationMs uint16
	Weak, Strong        uint8
}

// Handle is a simulated controller connection.
type Handle struct {
	spec      ControllerSpec
	caps      controller.Capability
	logger    *slog.Logger
	connected bool
	fresh     bool

	gp gamepad.InputState
	ms mouse.InputState
	kb keyboard.InputState
	bb balanceboard.InputState

	fbMu     sync.Mutex
	feedback []FeedbackEvent
}

func newHandle(spec ControllerSpec, logger *slog.Logger) *Handle {
	return &Handle{spec: spec, caps: capabilitiesOf(spec.Kind), logger: logger}
}

func (h *Handle) ID() controller.ID                   { return controller.ID(h.spec.ID) }
func (h *Handle) Connected() bool                     { return h.connected }
func (h *Handle) HasData() bool                       { return h.fresh }
func (h *Handle) Capabilities() controller.Capability { return h.caps }

func (h *Handle) Properties() controller.Properties {
	return controller.Properties{Model: h.spec.Model, VendorID: h.spec.VendorID, ProductID: h.spec.ProductID}
}

func (h *Handle) GamepadInput() gamepad.InputState           { return h.gp }
func (h *Handle) MouseInput() mouse.InputState               { return h.ms }
func (h *Handle) KeyboardInput() keyboard.InputState         { return h.kb }
func (h *Handle) BalanceBoardInput() balanceboard.InputState { return h.bb }

func (h *Handle) SetColorLED(r, g, b uint8) error {
	h.record(FeedbackEvent{Kind: FeedbackColor, R: r, G: g, B: b})
	h.logger.Info("set color led", "id", h.spec.ID, "r", r, "g", g, "b", b)
	return nil
}

func (h *Handle) SetPlayerLEDs(mask uint8) error {
	h.record(FeedbackEvent{Kind: FeedbackLEDs, LEDs: mask & 0x0f})
	h.logger.Info("set player leds", "id", h.spec.ID, "leds", mask&0x0f)
	return nil
}

func (h *Handle) PlayDualRumble(delayMs, durationMs uint16, weak, strong uint8) error {
	h.record(FeedbackEvent{Kind: FeedbackRumble, DelayMs: delayMs, DurationMs: durationMs, Weak: weak, Strong: strong})
	h.logger.Info("play dual rumble", "id", h.spec.ID, "duration_ms", durationMs, "weak", weak, "strong", strong)
	return nil
}

// Feedback returns a copy of the most recent outbound commands, oldest first.
func (h *Handle) Feedback() []FeedbackEvent {
	h.fbMu.Lock()
	defer h.fbMu.Unlock()
	return append([]FeedbackEvent(nil), h.feedback...)
}

func (h *Handle) record(ev FeedbackEvent) {
	h.fbMu.Lock()
	defer h.fbMu.Unlock()
	h.feedback = append(h.feedback, ev)
	if n := len(h.feedback); n > maxFeedbackHistory {
		h.feedback = append(h.feedback[:0], h.feedback[n-maxFeedbackHistory:]...)
	}
}

func (h *Handle) setFrame(f Frame) {
	// validated at load time
	gp, ms, kb, bb, _ := f.decode()
	h.gp, h.ms, h.kb, h.bb = gp, ms, kb, bb
	h.fresh = true
}
