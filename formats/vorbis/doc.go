// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32, already in [-1.0, 1.0] from the decoder
//   - Channels and sample rate: those of the stream
//
// Reads are trimmed to whole frames. Header errors are reported wrapped in
// ErrNotVorbisFile.
package vorbis
