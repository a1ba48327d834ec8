// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for RIFF chunk handling, so
// files with LIST/INFO or other extra chunks decode fine.
//
// # Supported Formats
//
// Decoding:
//   - integer PCM at 8, 16, 24 or 32 bits (plain and WAVE_FORMAT_EXTENSIBLE)
//   - any channel count and sample rate
//
// Encoding:
//   - integer PCM at 16, 24 or 32 bits
//
// IEEE float WAV is rejected with ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// The encoder seeks back on Close to fill in the RIFF and data sizes, so it
// needs an io.WriteSeeker such as *os.File:
//
//	file, _ := os.Create("output.wav")
//	sink, _ := wav.Encoder{}.Encode(file, audio.Format{SampleRate: 44100, Channels: 2}, 16)
//	sink.WriteSamples(samples)
//	sink.Close()
//	file.Close()
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: bit depth outside the supported set
//   - ErrUnsupportedWavChunks: no data chunk could be found
package wav
