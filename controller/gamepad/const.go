package gamepad

// Axis and trigger ranges as reported by the transport.
const (
	AxisMin    = -511
	AxisMax    = 512
	TriggerMin = 0
	TriggerMax = 1023
)

// Button bitmasks
const (
	ButtonA         uint16 = 0x0001 // Cross on PlayStation layouts
	ButtonB         uint16 = 0x0002 // Circle
	ButtonX         uint16 = 0x0004 // Square
	ButtonY         uint16 = 0x0008 // Triangle
	ButtonShoulderL uint16 = 0x0010
	ButtonShoulderR uint16 = 0x0020
	ButtonTriggerL  uint16 = 0x0040
	ButtonTriggerR  uint16 = 0x0080
	ButtonThumbL    uint16 = 0x0100
	ButtonThumbR    uint16 = 0x0200
)

// D-pad bitmasks
const (
	DPadUp    uint8 = 0x01
	DPadDown  uint8 = 0x02
	DPadRight uint8 = 0x04
	DPadLeft  uint8 = 0x08
)

// Misc button bitmasks
const (
	MiscSystem  uint8 = 0x01 // PS / Xbox / Home
	MiscSelect  uint8 = 0x02 // Back / Share / Minus
	MiscStart   uint8 = 0x04 // Options / Plus
	MiscCapture uint8 = 0x08
)

// ButtonName maps button bitmasks to the names accepted in configuration.
var ButtonName = map[uint16]string{
	ButtonA:         "a",
	ButtonB:         "b",
	ButtonX:         "x",
	ButtonY:         "y",
	ButtonShoulderL: "shoulder-l",
	ButtonShoulderR: "shoulder-r",
	ButtonTriggerL:  "trigger-l",
	ButtonTriggerR:  "trigger-r",
	ButtonThumbL:    "thumb-l",
	ButtonThumbR:    "thumb-r",
}
