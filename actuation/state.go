package actuation

// Color is an RGB triple for the controller light bar.
type Color struct {
	R, G, B uint8
}

// Palette is the color cycle, in order.
var Palette = [...]Color{
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
}

// State is the actuator command state shared by every gamepad slot for the
// lifetime of one dispatch loop.
type State struct {
	// ServoAngle is the last angle issued to the servo.
	ServoAngle int

	colorIdx   int
	ledCounter uint8
}

// NewState returns a State with the servo at center.
func NewState() *State {
	return &State{ServoAngle: CenterAngle}
}

// nextColor returns the current palette entry and advances the cycle.
func (s *State) nextColor() Color {
	c := Palette[s.colorIdx%len(Palette)]
	s.colorIdx = (s.colorIdx + 1) % len(Palette)
	return c
}

// nextPlayerLEDs advances the LED counter and returns its low 4 bits.
func (s *State) nextPlayerLEDs() uint8 {
	s.ledCounter++
	return s.ledCounter & 0x0f
}
