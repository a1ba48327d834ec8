// SPDX-License-Identifier: EPL-2.0

// Package audiofile reads and writes whole audio files on top of the
// format packages.
//
// # Reading
//
// Load decodes a file into memory, converted to the requested sample
// rate. The decoder is picked by extension, falling back to the file's
// leading bytes:
//
//	r, err := audiofile.Load("loop.wav", 44100, audiofile.WithChannels(2))
//	if err != nil {
//	    // errors.Is(err, audio.ErrFileNotFound), audio.ErrUnsupportedFormat
//	}
//	r.SetRepeatOn(true)
//
//	for {
//	    buf := r.Next(512) // always 512 × r.NumChannels() samples
//	    play(buf)
//	}
//
// With repeat off, reads past the end are padded with silence and AtEOF
// reports true. With repeat on, the file wraps to its first frame with no
// gap.
//
// # Writing
//
// Create picks WAV or AIFF from the extension (.wav, .aif, .aiff):
//
//	w, err := audiofile.Create("tone.wav", 44100, 2, audiofile.WithBitDepth(24))
//	if err != nil {
//	    // errors.Is(err, audio.ErrCannotCreateFile), audio.ErrUnsupportedFormat
//	}
//	defer w.Close()
//	err = w.WriteSamples(samples)
//
// WriteSamples after Close fails with audio.ErrInvalidState.
package audiofile
