// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding.
//
// This package uses github.com/go-audio/aiff for chunk parsing. AIFF is
// Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Decoding:
//   - AIFF and uncompressed AIFC
//   - signed PCM at 8, 16, 24 or 32 bits
//   - mono and multi-channel, any sample rate
//
// Encoding:
//   - PCM at 16, 24 or 32 bits
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Writing AIFF Files
//
//	file, _ := os.Create("output.aiff")
//	sink, _ := aiff.Encoder{}.Encode(file, audio.Format{SampleRate: 44100, Channels: 2}, 16)
//	sink.WriteSamples(samples)
//	sink.Close()
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: bit depth outside the supported set
//   - ErrUnsupportedAiffLayout: unreadable COMM chunk
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores 8-bit samples signed (WAV stores them unsigned)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
package aiff
