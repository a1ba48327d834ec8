// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/internal/pcmio"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcmio.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	bitDepth := int(dec.BitDepth)
	var pcm pcmio.PCMReader = dec
	switch bitDepth {
	case 8:
		pcm = signed8{dec}
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	f := audio.Format{SampleRate: format.SampleRate, Channels: format.NumChannels}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return pcmio.NewSource(pcm, f, bitDepth, false), nil
}

// signed8 folds 8-bit samples into int8 range whether the decoder hands
// back raw bytes or sign-extended values.
type signed8 struct {
	dec pcmio.PCMReader
}

func (s signed8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := s.dec.PCMBuffer(buf)
	for i := range buf.Data[:n] {
		buf.Data[i] = int(int8(uint8(buf.Data[i])))
	}
	return n, err
}
