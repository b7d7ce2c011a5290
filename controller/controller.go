// Package controller defines the handle contract between transports and the
// dispatch core, and classifies handles into controller variants.
package controller

import "fmt"

// ID is a transport-assigned connection identifier. It is stable for the
// lifetime of one connection.
type ID string

// Capability is a bitmask of what a connected controller reports itself to be.
type Capability uint32

const (
	CapGamepad Capability = 1 << iota
	CapMouse
	CapKeyboard
	CapBalanceBoard
)

// variantMask covers the capability bits that select a variant.
const variantMask = CapGamepad | CapMouse | CapKeyboard | CapBalanceBoard

// Properties describes the connected peripheral.
type Properties struct {
	Model     string
	VendorID  uint16
	ProductID uint16
}

// Handle is a non-owning view of a controller connection. Transports own the
// connection; the core only reads from it and issues feedback.
type Handle interface {
	ID() ID
	// Connected reports whether the transport still holds the connection.
	Connected() bool
	// HasData reports whether a fresh frame arrived since the last poll.
	HasData() bool
	Capabilities() Capability
	Properties() Properties
}

// Feedback is implemented by handles that accept outbound commands.
type Feedback interface {
	SetColorLED(r, g, b uint8) error
	// SetPlayerLEDs sets the player indicator LEDs from the low 4 bits of mask.
	SetPlayerLEDs(mask uint8) error
	PlayDualRumble(delayMs, durationMs uint16, weak, strong uint8) error
}

func (c Capability) String() string {
	return fmt.Sprintf("0x%02x", uint32(c))
}
