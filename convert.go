// SPDX-License-Identifier: EPL-2.0

package audios

import (
	"errors"
	"fmt"

	"github.com/ik5/audios/audiofile"
)

// convertChunk is how many frames Convert moves per write.
const convertChunk = 4096

// Convert decodes inPath, converts it to targetRate and writes it to
// outPath in the container named by outPath's extension. opts apply to
// both sides: WithChannels and WithQuality to the read, WithBitDepth to
// the write. A targetRate of 0 keeps the input rate.
//
// It returns the number of frames written.
func Convert(inPath, outPath string, targetRate int, opts ...audiofile.Option) (int, error) {
	r, err := audiofile.Load(inPath, targetRate, opts...)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	w, err := audiofile.Create(outPath, r.SampleRate(), r.NumChannels(), opts...)
	if err != nil {
		return 0, err
	}

	for left := r.Frames(); left > 0; {
		n := min(left, convertChunk)
		if err := w.WriteSamples(r.Next(n)); err != nil {
			return w.FramesWritten(), errors.Join(fmt.Errorf("convert %s: %w", inPath, err), w.Close())
		}
		left -= n
	}

	if err := w.Close(); err != nil {
		return w.FramesWritten(), fmt.Errorf("convert %s: %w", inPath, err)
	}

	return w.FramesWritten(), nil
}
