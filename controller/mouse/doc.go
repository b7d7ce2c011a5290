// Package mouse decodes mouse frames. Mouse input is reported but never
// drives the actuator.
package mouse
