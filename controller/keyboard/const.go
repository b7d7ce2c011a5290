package keyboard

// Key is a HID keyboard usage code.
type Key uint8

// Modifier key bitmasks, as carried in InputState.Modifiers
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftMeta   = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightMeta  = 0x80
)

// modifierMasks is indexed by k - firstModifier.
var modifierMasks = [...]uint8{
	ModLeftCtrl, ModLeftShift, ModLeftAlt, ModLeftMeta,
	ModRightCtrl, ModRightShift, ModRightAlt, ModRightMeta,
}

// HID usage codes for the decoded key space (USB HID Keyboard/Keypad usage page)
const (
	// Letters A-Z
	KeyA Key = 0x04
	KeyB Key = 0x05
	KeyC Key = 0x06
	KeyD Key = 0x07
	KeyE Key = 0x08
	KeyF Key = 0x09
	KeyG Key = 0x0A
	KeyH Key = 0x0B
	KeyI Key = 0x0C
	KeyJ Key = 0x0D
	KeyK Key = 0x0E
	KeyL Key = 0x0F
	KeyM Key = 0x10
	KeyN Key = 0x11
	KeyO Key = 0x12
	KeyP Key = 0x13
	KeyQ Key = 0x14
	KeyR Key = 0x15
	KeyS Key = 0x16
	KeyT Key = 0x17
	KeyU Key = 0x18
	KeyV Key = 0x19
	KeyW Key = 0x1A
	KeyX Key = 0x1B
	KeyY Key = 0x1C
	KeyZ Key = 0x1D

	// Numbers 1-0 (top row)
	Key1 Key = 0x1E
	Key2 Key = 0x1F
	Key3 Key = 0x20
	Key4 Key = 0x21
	Key5 Key = 0x22
	Key6 Key = 0x23
	Key7 Key = 0x24
	Key8 Key = 0x25
	Key9 Key = 0x26
	Key0 Key = 0x27

	// Special keys
	KeyEnter        Key = 0x28
	KeyEscape       Key = 0x29
	KeyBackspace    Key = 0x2A
	KeyTab          Key = 0x2B
	KeySpacebar     Key = 0x2C
	KeyUnderscore   Key = 0x2D // - and _
	KeyEqual        Key = 0x2E
	KeyOpenBracket  Key = 0x2F
	KeyCloseBracket Key = 0x30
	KeyBackslash    Key = 0x31
	KeyTilde        Key = 0x32 // Non-US # and ~
	KeySemiColon    Key = 0x33
	KeyQuote        Key = 0x34
	KeyGraveAccent  Key = 0x35
	KeyComma        Key = 0x36
	KeyDot          Key = 0x37
	KeySlash        Key = 0x38
	KeyCapsLock     Key = 0x39

	// Function keys
	KeyF1  Key = 0x3A
	KeyF2  Key = 0x3B
	KeyF3  Key = 0x3C
	KeyF4  Key = 0x3D
	KeyF5  Key = 0x3E
	KeyF6  Key = 0x3F
	KeyF7  Key = 0x40
	KeyF8  Key = 0x41
	KeyF9  Key = 0x42
	KeyF10 Key = 0x43
	KeyF11 Key = 0x44
	KeyF12 Key = 0x45

	// Control keys
	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4A
	KeyPageUp      Key = 0x4B
	KeyDelete      Key = 0x4C
	KeyEnd         Key = 0x4D
	KeyPageDown    Key = 0x4E

	// Arrow keys
	KeyRightArrow Key = 0x4F
	KeyLeftArrow  Key = 0x50
	KeyDownArrow  Key = 0x51
	KeyUpArrow    Key = 0x52

	// Modifiers
	KeyLeftControl  Key = 0xE0
	KeyLeftShift    Key = 0xE1
	KeyLeftAlt      Key = 0xE2
	KeyLeftMeta     Key = 0xE3
	KeyRightControl Key = 0xE4
	KeyRightShift   Key = 0xE5
	KeyRightAlt     Key = 0xE6
	KeyRightMeta    Key = 0xE7
)

// Bounds of the decoded key space.
const (
	firstKey      = KeyA
	lastKey       = KeyUpArrow
	firstModifier = KeyLeftControl
	lastModifier  = KeyRightMeta
)

var keyNames = [...]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V",
	"W", "X", "Y", "Z", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"Enter", "Escape", "Backspace", "Tab", "Spacebar", "Underscore", "Equal", "OpenBracket", "CloseBracket",
	"Backslash", "Tilde", "SemiColon", "Quote", "GraveAccent", "Comma", "Dot", "Slash", "CapsLock",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"PrintScreen", "ScrollLock", "Pause", "Insert", "Home", "PageUp", "Delete", "End", "PageDown",
	"RightArrow", "LeftArrow", "DownArrow", "UpArrow",
}

var modifierNames = [...]string{
	"Left Control", "Left Shift", "Left Alt", "Left Meta",
	"Right Control", "Right Shift", "Right Alt", "Right Meta",
}
