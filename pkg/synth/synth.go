// ABOUTME: Two-oscillator synthesizer
// ABOUTME: Mixes a primary and optional secondary oscillator per sample
package synth

// Synth mixes up to two oscillators
type Synth struct {
	Osc1 Oscillator
	Osc2 *Oscillator
}

// New creates a single-oscillator synth
func New(osc Oscillator) *Synth {
	return &Synth{Osc1: osc}
}

// WithSecond adds a secondary oscillator
func (s *Synth) WithSecond(osc Oscillator) *Synth {
	s.Osc2 = &osc
	return s
}

// ConstantWave returns amp times the oscillator mix at time t
func (s *Synth) ConstantWave(freq, amp, t float64) float64 {
	v := s.Osc1.Sample(freq, t)
	if s.Osc2 != nil {
		v += s.Osc2.Sample(freq, t)
	}
	return amp * v
}
