// ABOUTME: Waveform shapes and oscillators
// ABOUTME: Evaluates sine, square, sawtooth and triangle waves at a phase
package synth

import (
	"fmt"
	"math"
)

// Waveform selects an oscillator shape
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

// String returns the waveform name
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

// Shape returns the waveform value in [-1, 1] at phase p, measured in cycles
func (w Waveform) Shape(p float64) float64 {
	p -= math.Floor(p)
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*p - 1
	case Triangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Oscillator is a waveform with a fixed output volume
type Oscillator struct {
	Waveform Waveform
	Volume   float64
}

// Sample evaluates the oscillator at time t for a constant frequency
func (o Oscillator) Sample(freq, t float64) float64 {
	return o.Volume * o.Waveform.Shape(freq*t)
}
