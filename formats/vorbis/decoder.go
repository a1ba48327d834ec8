// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audios/audio"
)

// oggReader is the subset of oggvorbis.Reader the source uses.
// Read fills p with interleaved samples and returns the sample count.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst[:want])
	n -= n % s.channels

	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
			return n, io.EOF
		}
		return n, fmt.Errorf("vorbis read: %w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	f := audio.Format{SampleRate: dec.SampleRate(), Channels: dec.Channels()}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &source{
		dec:        dec,
		sampleRate: f.SampleRate,
		channels:   f.Channels,
	}, nil
}
