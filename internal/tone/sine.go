// SPDX-License-Identifier: EPL-2.0

// Package tone generates test tones for the player and writer.
package tone

import "math"

// Sine is a phase-continuous sine oscillator writing the same value to
// every channel.
type Sine struct {
	Frequency  float64
	Amplitude  float32
	SampleRate int
	Channels   int

	phase float64 // in cycles, [0,1)
}

func NewSine(frequency float64, amplitude float32, sampleRate, channels int) *Sine {
	return &Sine{
		Frequency:  frequency,
		Amplitude:  amplitude,
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Fill writes numFrames interleaved frames into buf and advances the
// phase. buf must hold numFrames × Channels samples.
func (s *Sine) Fill(buf []float32, numFrames int) {
	step := s.Frequency / float64(s.SampleRate)

	for f := range numFrames {
		v := s.Amplitude * float32(math.Sin(2*math.Pi*s.phase))
		frame := buf[f*s.Channels : (f+1)*s.Channels]
		for c := range frame {
			frame[c] = v
		}

		s.phase += step
		s.phase -= math.Floor(s.phase)
	}
}

// Render has the player callback signature and expects a *Sine in
// userData. Any other value renders silence.
func Render(buf []float32, numFrames int, userData any) {
	s, ok := userData.(*Sine)
	if !ok {
		clear(buf)
		return
	}
	s.Fill(buf, numFrames)
}

// Phase reports the oscillator position in cycles.
func (s *Sine) Phase() float64 { return s.phase }

// Reset returns the oscillator to phase zero.
func (s *Sine) Reset() { s.phase = 0 }
