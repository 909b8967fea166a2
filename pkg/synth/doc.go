// ABOUTME: Oscillator package for the synthesizer-backed sound generator
// ABOUTME: Provides waveform shapes, oscillators and a two-oscillator synth
// Package synth provides a small oscillator abstraction.
//
// An Oscillator has a waveform shape and a volume. A Synth mixes a primary
// oscillator with an optional secondary one and evaluates the mix at an
// instant in time for a given frequency and amplitude:
//
//	s := synth.New(synth.Oscillator{Waveform: synth.Sine, Volume: 0.8})
//	for i := range data {
//	    t := float64(i) / 44100
//	    data[i] = s.ConstantWave(800, math.Exp(-40*t), t)
//	}
//
// Evaluation is stateless: the phase is frequency*t, so a frequency that
// changes over time is simply passed per sample.
package synth
