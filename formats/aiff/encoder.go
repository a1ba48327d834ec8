// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/internal/pcmio"
)

// Encoder writes big-endian PCM AIFF at 16, 24 or 32 bits.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, f audio.Format, bitDepth int) (audio.Sink, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d (writable: 16, 24, 32)", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := goaiff.NewEncoder(w, f.SampleRate, bitDepth, f.Channels)

	return pcmio.NewSink(enc, f, bitDepth), nil
}
