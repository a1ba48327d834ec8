// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/internal/pcmio"
)

// Encoder writes integer PCM WAV at 16, 24 or 32 bits.
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

	enc := gowav.NewEncoder(w, f.SampleRate, bitDepth, f.Channels, formatPCM)

	return pcmio.NewSink(enc, f, bitDepth), nil
}
