// ABOUTME: Synthesizer-backed sound effect recipes
// ABOUTME: Renders click, hover, move, win and draw effects as float samples
package synthfx

import (
	"math"

	"github.com/tictactech/assetgen/pkg/audio"
	"github.com/tictactech/assetgen/pkg/synth"
)

const sampleRate = float64(audio.DefaultSampleRate)

// Sound is one catalog entry: a file name, its length and its recipe
type Sound struct {
	Name     string
	Frames   int
	Headroom float64
	Render   func(frames int) []float64
}

// Catalog lists the effects in generation order
func Catalog() []Sound {
	return []Sound{
		{"button_click.wav", 8000, 1.0, ButtonClick},
		{"button_hover.wav", 5000, 0.5, ButtonHover},
		{"x_move.wav", 15000, 0.7, XMove},
		{"o_move.wav", 15000, 0.7, OMove},
		{"win.wav", 44100, 0.8, Win},
		{"draw.wav", 30000, 0.7, Draw},
	}
}

// render evaluates fn at each frame time
func render(frames int, fn func(t float64) float64) []float64 {
	data := make([]float64, frames)
	for i := range data {
		data[i] = fn(float64(i) / sampleRate)
	}
	return data
}

// ButtonClick is a high square tone with a very fast decay
func ButtonClick(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Square, Volume: 1.0})
	return render(frames, func(t float64) float64 {
		return s.ConstantWave(1200, math.Exp(-30*t), t)
	})
}

// ButtonHover is a soft sine blip
func ButtonHover(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Sine, Volume: 0.8})
	return render(frames, func(t float64) float64 {
		return s.ConstantWave(800, math.Exp(-40*t), t)
	})
}

// XMove is a descending sawtooth
func XMove(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Sawtooth, Volume: 1.0})
	return render(frames, func(t float64) float64 {
		return s.ConstantWave(600-200*t, math.Exp(-10*t), t)
	})
}

// OMove is an ascending sine
func OMove(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Sine, Volume: 1.0})
	return render(frames, func(t float64) float64 {
		return s.ConstantWave(400+200*t, math.Exp(-10*t), t)
	})
}

var (
	winNotes = []float64{400, 500, 600, 800}
	winChord = []float64{600, 750, 900}
)

// Win is an ascending arpeggio with a chord mixed into the second half
func Win(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Sine, Volume: 0.8}).
		WithSecond(synth.Oscillator{Waveform: synth.Square, Volume: 0.3})

	data := make([]float64, frames)
	noteLen := frames / len(winNotes)
	for n, note := range winNotes {
		start := n * noteLen
		for i := start; i < start+noteLen; i++ {
			t := float64(i-start) / sampleRate
			data[i] = s.ConstantWave(note, math.Exp(-3*t), t)
		}
	}

	half := frames / 2
	for i := half; i < frames; i++ {
		t := float64(i-half) / sampleRate
		amp := math.Exp(-2 * t)
		var chord float64
		for _, f := range winChord {
			chord += s.ConstantWave(f, amp, t)
		}
		data[i] += chord / float64(len(winChord))
	}
	return data
}

// Draw is a wavering triangle and sine blend
func Draw(frames int) []float64 {
	s := synth.New(synth.Oscillator{Waveform: synth.Triangle, Volume: 0.7}).
		WithSecond(synth.Oscillator{Waveform: synth.Sine, Volume: 0.3})
	return render(frames, func(t float64) float64 {
		freq := 350 + 50*math.Sin(2*math.Pi*3*t)
		return s.ConstantWave(freq, math.Exp(-5*t), t)
	})
}

// Normalize scales samples so the loudest one lands on 32767*headroom, then
// rounds and clamps. A silent buffer is returned as zeros without scaling.
func Normalize(samples []float64, headroom float64) []int16 {
	out := make([]int16, len(samples))
	peak := peakOf(samples)
	if peak == 0 {
		return out
	}

	scale := audio.Max16Bit * headroom / peak
	for i, v := range samples {
		out[i] = audio.ClampInt16(math.Round(v * scale))
	}
	return out
}

func peakOf(samples []float64) float64 {
	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
