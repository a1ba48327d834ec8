// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/utils"
)

// go-mp3 always yields interleaved stereo int16 LE.
const (
	outChannels    = 2
	bytesPerSample = 2
	bytesPerFrame  = outChannels * bytesPerSample
)

// mp3Reader is the subset of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	pending    int // bytes of a partial frame carried to the next read
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / outChannels
	if frames == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := frames * bytesPerFrame
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.pending])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.pending:])
	avail := s.pending + n
	whole := avail - avail%bytesPerFrame

	for i := 0; i < whole/bytesPerSample; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.PCMToFloat(int(v), 16)
	}

	s.pending = copy(s.buf, s.buf[whole:avail])
	samples := whole / bytesPerSample

	if err != nil {
		if err == io.EOF {
			s.eof = true
			return samples, io.EOF
		}
		return samples, fmt.Errorf("mp3 read: %w", err)
	}

	return samples, nil
}

type Decoder struct{}

// Decode reads the first MP3 frame header and returns a stereo source at
// the stream's sample rate. Mono streams come out with both channels equal.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
