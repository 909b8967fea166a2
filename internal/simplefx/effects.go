// ABOUTME: Direct-synthesis sound effect recipes
// ABOUTME: Computes each effect as an enveloped sine straight into int16 samples
package simplefx

import (
	"math"

	"github.com/tictactech/assetgen/pkg/audio"
)

const sampleRate = float64(audio.DefaultSampleRate)

// Effect is one catalog entry
type Effect struct {
	Name     string
	Duration float64
	Render   func(frames int) []int16
}

// Catalog lists the effects in generation order
func Catalog() []Effect {
	return []Effect{
		{"button_click.wav", 0.15, ButtonClick},
		{"button_hover.wav", 0.1, ButtonHover},
		{"x_move.wav", 0.2, XMove},
		{"o_move.wav", 0.2, OMove},
		{"win.wav", 1.0, Win},
		{"draw.wav", 0.8, Draw},
	}
}

// tone returns int(amp * sin(2*pi*freq*t)) for frame i, clamped
func tone(amp, freq float64, i int) int16 {
	t := float64(i) / sampleRate
	return audio.ClampInt16(amp * math.Sin(2*math.Pi*freq*t))
}

func progress(i, frames int) float64 {
	return float64(i) / float64(frames)
}

// attackSustainRelease rises linearly until attackEnd, holds at 1 and falls
// linearly to 0 between releaseStart and the end of the clip
func attackSustainRelease(p, attackEnd, releaseStart float64) float64 {
	if p < attackEnd {
		return p / attackEnd
	}
	return math.Min(1, math.Max(0, 1-(p-releaseStart)/(1-releaseStart)))
}

// drawEnvelope rises linearly to 1 over p<0.2, then steps up to 1.6 and
// falls linearly to 0 at the end. At the 0.6 level the swell stays inside
// the 16-bit range.
func drawEnvelope(p float64) float64 {
	if p < 0.2 {
		return 5 * p
	}
	return math.Max(0, 1-(p-0.5)/0.5)
}

// ButtonClick has a short 1200 Hz attack followed by a linear 800 Hz decay
func ButtonClick(frames int) []int16 {
	amp := audio.Max16Bit * 0.7
	attack := int(float64(frames) * 0.05)
	decay := frames - attack

	samples := make([]int16, frames)
	for i := 0; i < attack; i++ {
		samples[i] = tone(amp*float64(i)/float64(attack), 1200, i)
	}
	for i := 0; i < decay; i++ {
		samples[attack+i] = tone(amp*(1-float64(i)/float64(decay)), 800, attack+i)
	}
	return samples
}

// ButtonHover sweeps from 2000 Hz down to 1000 Hz while fading out
func ButtonHover(frames int) []int16 {
	amp := audio.Max16Bit * 0.3
	duration := float64(frames) / sampleRate

	samples := make([]int16, frames)
	for i := range samples {
		t := float64(i) / sampleRate
		freq := 2000 - 1000*t/duration
		samples[i] = tone(amp*(1-progress(i, frames)), freq, i)
	}
	return samples
}

// move glides from base+mod down to base under a sine swell with a tail
func move(frames int, base, mod float64) []int16 {
	amp := audio.Max16Bit * 0.6

	samples := make([]int16, frames)
	for i := range samples {
		p := progress(i, frames)
		env := 1 - (p-0.8)/0.2
		if p < 0.8 {
			env = math.Sin(math.Pi * p)
		}
		samples[i] = tone(amp*env, base+mod*(1-p), i)
	}
	return samples
}

// XMove is the placement sound for X
func XMove(frames int) []int16 {
	return move(frames, 600, 200)
}

// OMove is the placement sound for O
func OMove(frames int) []int16 {
	return move(frames, 400, 100)
}

var winNotes = []float64{523.25, 659.26, 783.99, 1046.5}

// winNote picks the arpeggio step: four rising sixteenths, then the top
// note held for the rest of each half
func winNote(p float64) int {
	n := int(p*16) % 8
	if n > len(winNotes)-1 {
		n = len(winNotes) - 1
	}
	return n
}

// Win hops through a C major arpeggio
func Win(frames int) []int16 {
	amp := audio.Max16Bit * 0.7

	samples := make([]int16, frames)
	for i := range samples {
		p := progress(i, frames)
		samples[i] = tone(amp*attackSustainRelease(p, 0.1, 0.6), winNotes[winNote(p)], i)
	}
	return samples
}

// Draw is a slowly descending neutral tone
func Draw(frames int) []int16 {
	amp := audio.Max16Bit * 0.6

	samples := make([]int16, frames)
	for i := range samples {
		p := progress(i, frames)
		samples[i] = tone(amp*drawEnvelope(p), 400-100*p, i)
	}
	return samples
}

// maxFade caps the fade-out length of Beep
const maxFade = 4000

// Beep renders a plain sine at freq for duration seconds with volume in
// [0, 1], fading out over the last 20% of the clip (at most maxFade frames)
func Beep(freq, duration, volume float64) []int16 {
	frames := audio.FrameCount(duration, audio.DefaultSampleRate)
	amp := audio.Max16Bit * volume

	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = tone(amp, freq, i)
	}

	fade := int(float64(frames) * 0.2)
	if fade > maxFade {
		fade = maxFade
	}
	start := frames - fade
	for i := 0; i < fade; i++ {
		samples[start+i] = audio.ClampInt16(float64(samples[start+i]) * (1 - float64(i)/float64(fade)))
	}
	return samples
}
