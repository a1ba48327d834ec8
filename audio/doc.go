// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio processing building blocks:
//   - Source and Sink interfaces for audio input and output
//   - Format, the sample rate and channel count of a stream
//   - Resampler for streaming sample rate conversion
//   - ResampleBuffer for whole-buffer conversion at a chosen Quality
//   - Remixer for channel count changes
//   - Registry for decoder and encoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// When the whole signal is in memory, ResampleBuffer can use the polyphase
// engine instead:
//
//	out, err := audio.ResampleBuffer(samples, audio.Format{SampleRate: 44100, Channels: 2}, 48000, audio.QualityHigh)
//
// # Channel Mixing
//
// The Remixer averages down to mono or duplicates mono up to N channels:
//
//	mono := audio.NewMonoMixer(source)
//	stereo, err := audio.NewRemixer(mono, 2)
//
// # Format Registry
//
// The registry maps a format key to its decoder and encoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as interleaved float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// A frame is one sample per channel.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors wrap
// one of the package sentinels, so callers can use errors.Is:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n] first: n may be > 0 together with io.EOF
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
