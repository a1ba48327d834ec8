// SPDX-License-Identifier: EPL-2.0

// Package pcmio adapts go-audio integer PCM decoders and encoders to the
// float32 Source and Sink interfaces.
package pcmio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/utils"
)

// PCMReader is the read side shared by go-audio's wav and aiff decoders.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// PCMWriter is the write side shared by go-audio's wav and aiff encoders.
type PCMWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Source reads integer PCM and yields float32.
type Source struct {
	dec      PCMReader
	format   audio.Format
	bitDepth int
	unsigned bool // 8-bit WAV stores 0..255 with 128 as silence
	intBuf   *goaudio.IntBuffer
	eof      bool
}

func NewSource(dec PCMReader, f audio.Format, bitDepth int, unsigned bool) *Source {
	return &Source{
		dec:      dec,
		format:   f,
		bitDepth: bitDepth,
		unsigned: unsigned,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, 4096),
			Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.Channels }
func (s *Source) BufSize() int    { return cap(s.intBuf.Data) }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.format.Channels
	if want == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.intBuf.Data) < want {
		s.intBuf.Data = make([]int, want)
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("pcm read: %w", err)
	}
	n -= n % s.format.Channels

	data := s.intBuf.Data[:n]
	if s.unsigned && s.bitDepth == 8 {
		for i, v := range data {
			dst[i] = float32(v-128) / 128
		}
	} else {
		utils.PCMToFloats(dst, data, s.bitDepth)
	}

	if n < want || err != nil {
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}

// Sink writes float32 as integer PCM through an encoder.
type Sink struct {
	enc      PCMWriter
	format   audio.Format
	bitDepth int
	intBuf   *goaudio.IntBuffer
	wrote    bool
}

func NewSink(enc PCMWriter, f audio.Format, bitDepth int) *Sink {
	return &Sink{
		enc:      enc,
		format:   f,
		bitDepth: bitDepth,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Sink) SampleRate() int { return s.format.SampleRate }
func (s *Sink) Channels() int   { return s.format.Channels }

func (s *Sink) WriteSamples(src []float32) (int, error) {
	if len(src)%s.format.Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(src) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(src) {
		s.intBuf.Data = make([]int, len(src))
	}
	s.intBuf.Data = s.intBuf.Data[:len(src)]
	utils.FloatsToPCM(s.intBuf.Data, src, s.bitDepth)

	if err := s.enc.Write(s.intBuf); err != nil {
		return 0, fmt.Errorf("pcm write: %w", err)
	}
	s.wrote = true

	return len(src), nil
}

// Close patches the container header. An empty write forces the header
// out when no samples were written.
func (s *Sink) Close() error {
	if !s.wrote {
		s.intBuf.Data = s.intBuf.Data[:0]
		if err := s.enc.Write(s.intBuf); err != nil {
			return fmt.Errorf("pcm header: %w", err)
		}
	}

	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("pcm close: %w", err)
	}
	return nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
