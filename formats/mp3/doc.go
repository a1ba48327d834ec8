// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, a pure Go MPEG-1/2
// Layer III decoder.
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2; mono streams are duplicated by go-mp3
//   - Sample rate: that of the stream
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// To get mono at a different rate, wrap the source:
//
//	resampled := audio.NewResampler(source, 8000)
//	mono := audio.NewMonoMixer(resampled)
//
// Reads always return whole stereo frames. A request shorter than one
// frame returns zero samples.
package mp3
