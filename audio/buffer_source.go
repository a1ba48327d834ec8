// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves samples already held in memory.
type BufferSource struct {
	format  Format
	samples []float32
	pos     int
}

// NewBufferSource wraps interleaved samples. The slice is not copied.
func NewBufferSource(samples []float32, f Format) *BufferSource {
	return &BufferSource{format: f, samples: samples}
}

func (s *BufferSource) SampleRate() int { return s.format.SampleRate }
func (s *BufferSource) Channels() int   { return s.format.Channels }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.format.Channels
	n := copy(dst[:want], s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}
