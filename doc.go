// SPDX-License-Identifier: EPL-2.0

// Package audios is a small audio I/O layer: it reads audio files into
// memory at a chosen sample rate, writes samples to WAV or AIFF, and
// streams callback-rendered audio to the default output device.
//
// # Supported Formats
//
// Reading (via audiofile.Load):
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// Writing (via audiofile.Create): WAV and AIFF at 16, 24 or 32 bits.
//
// # Quick Start
//
// Load a file, converted to 44.1 kHz stereo, and read it in fixed blocks:
//
//	r, err := audiofile.Load("loop.ogg", 44100, audiofile.WithChannels(2))
//	if err != nil {
//	    // audio.ErrFileNotFound, audio.ErrUnsupportedFormat
//	}
//	r.SetRepeatOn(true)
//	block := r.Next(512) // 1024 interleaved samples
//
// Write samples:
//
//	w, _ := audiofile.Create("out.wav", 44100, 2)
//	w.WriteSamples(block)
//	w.Close()
//
// Play a tone:
//
//	p, _ := player.New(44100, 512, 2)
//	p.Start(tone.Render, tone.NewSine(440, 0.5, 44100, 2))
//	defer p.Close()
//
// Convert between files in one call:
//
//	frames, err := audios.Convert("in.mp3", "out.wav", 16000, audiofile.WithChannels(1))
//
// # Audio Processing Pipeline
//
// The audio subpackage holds the streaming building blocks used above:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	samples, err := audio.Collect(mono, 4096)
//
// For offline conversion, audio.ResampleBuffer offers the polyphase
// qualities of github.com/tphakala/go-audio-resampler.
//
// See the individual subpackages for more detailed documentation.
package audios
