package controller

// Variant is the closed set of controller kinds the core knows how to handle.
type Variant uint8

const (
	Unsupported Variant = iota
	Gamepad
	Mouse
	Keyboard
	BalanceBoard
)

func (v Variant) String() string {
	switch v {
	case Gamepad:
		return "gamepad"
	case Mouse:
		return "mouse"
	case Keyboard:
		return "keyboard"
	case BalanceBoard:
		return "balanceboard"
	default:
		return "unsupported"
	}
}

// Classify resolves a handle to exactly one variant. A handle presenting no
// variant capability, or more than one, is Unsupported.
func Classify(h Handle) Variant {
	if h == nil {
		return Unsupported
	}
	switch h.Capabilities() & variantMask {
	case CapGamepad:
		return Gamepad
	case CapMouse:
		return Mouse
	case CapKeyboard:
		return Keyboard
	case CapBalanceBoard:
		return BalanceBoard
	default:
		return Unsupported
	}
}
