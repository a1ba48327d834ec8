// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC (Free Lossless Audio Codec) decoding.
//
// This package uses github.com/mewkiz/flac, a pure Go FLAC decoder.
// Frames are decoded one at a time and interleaved into float32 samples
// in [-1.0, 1.0], normalised by the stream's bits per sample.
//
// # Decoding FLAC Files
//
//	file, _ := os.Open("audio.flac")
//	source, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close()
//
// Unlike the other decoders, Close releases the underlying stream.
package flac
