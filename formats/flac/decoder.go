// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/utils"
)

// frameParser is the subset of flac.Stream the source uses.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves decoded FLAC frames. Each frame holds one block of
// samples per channel; leftovers wait in pending for the next read.
type source struct {
	stream   frameParser
	format   audio.Format
	bitDepth int
	total    int64
	pending  []float32
	eof      bool
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.Channels }
func (s *source) BufSize() int    { return 4096 * s.format.Channels }
func (s *source) Close() error    { return s.stream.Close() }

// TotalFrames is the frame count from STREAMINFO, or 0 when unknown.
func (s *source) TotalFrames() int64 { return s.total }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.format.Channels
	if want == 0 {
		return 0, nil
	}

	n := 0
	for n < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.decodeFrame(); err != nil {
				if errors.Is(err, io.EOF) {
					s.eof = true
					continue
				}
				return n, err
			}
		}

		c := copy(dst[n:want], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if s.eof && len(s.pending) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func (s *source) decodeFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("flac frame: %w", err)
	}

	if len(f.Subframes) != s.format.Channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(f.Subframes), s.format.Channels)
	}

	block := len(f.Subframes[0].Samples)
	size := block * s.format.Channels
	if cap(s.pending) < size {
		s.pending = make([]float32, size)
	}
	s.pending = s.pending[:size]

	for ch, sub := range f.Subframes {
		for i := 0; i < block && i < len(sub.Samples); i++ {
			s.pending[i*s.format.Channels+ch] = utils.PCMToFloat(int(sub.Samples[i]), s.bitDepth)
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil {
		stream.Close()
		return nil, ErrNotFlacFile
	}

	src, err := newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample), int64(info.NSamples))
	if err != nil {
		stream.Close()
		return nil, err
	}
	return src, nil
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int, total int64) (*source, error) {
	f := audio.Format{SampleRate: sampleRate, Channels: channels}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}
	if bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:   stream,
		format:   f,
		bitDepth: bitDepth,
		total:    total,
	}, nil
}
