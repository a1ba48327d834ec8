// SPDX-License-Identifier: EPL-2.0

// Package config holds the defaults shared by the sinegen commands.
package config

// Stream settings
const (
	SampleRate = 44100
	FrameSize  = 512 // frames per render callback
	Channels   = 2
)

// Tone settings
const (
	Frequency = 440.0 // A4
	Amplitude = 0.5
	Duration  = 2.0 // seconds, for write
)

// File settings
const (
	BitDepth   = 16
	OutputFile = "sine.wav"
	Quality    = "cubic" // resampler for loop and convert
)
