// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles shared by the audio packages.
// Nothing here imports audio, so audio's own tests can use it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// MockSource generates totalFrames frames from a waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32
	closed      bool
}

func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate)))
	})
}

func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewRampSource yields frame index i as i/totalFrames on every channel,
// plus channel*0.001 so channels can be told apart.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame)/float32(totalFrames) + float32(channel)*0.001
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// ErrInjected is returned by FailingSource.
var ErrInjected = errors.New("injected failure")

// FailingSource returns ErrInjected from ReadSamples.
type FailingSource struct {
	Rate, Chans int
}

func (s FailingSource) SampleRate() int                  { return s.Rate }
func (s FailingSource) Channels() int                    { return s.Chans }
func (s FailingSource) BufSize() int                     { return 4096 }
func (s FailingSource) Close() error                     { return nil }
func (s FailingSource) ReadSamples([]float32) (int, error) { return 0, ErrInjected }

// WriteSeeker is an in-memory io.WriteSeeker for encoders that patch
// their header on close.
type WriteSeeker struct {
	buf []byte
	pos int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.buf)) {
		w.buf = append(w.buf, make([]byte, end-int64(len(w.buf)))...)
	}
	copy(w.buf[w.pos:], p)
	w.pos = end

	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = w.pos + offset
	case io.SeekEnd:
		next = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	w.pos = next

	return next, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.buf }
