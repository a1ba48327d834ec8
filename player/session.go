// SPDX-License-Identifier: EPL-2.0

package player

import (
	"io"
	"sync"

	"github.com/ik5/audios/audio"
)

// session drives the user callback one block of frameSize frames at a
// time and hands the result out in whatever size the device asks for.
type session struct {
	mu       sync.Mutex
	cb       Callback
	userData any
	frames   int
	channels int
	format   SampleFormat
	block    []float32
	off      int // samples of block already delivered
	blocks   uint64
	closed   bool
}

func newSession(cfg StreamConfig, cb Callback, userData any) *session {
	block := make([]float32, cfg.FrameSize*cfg.Channels)

	return &session{
		cb:       cb,
		userData: userData,
		frames:   cfg.FrameSize,
		channels: cfg.Channels,
		format:   cfg.Format,
		block:    block,
		off:      len(block),
	}
}

// render refills block from the callback. Caller holds mu.
func (s *session) render() {
	clear(s.block)
	s.cb(s.block, s.frames, s.userData)
	s.off = 0
	s.blocks++
}

// Read encodes audio for pull-style devices. It returns io.EOF once the
// session is closed.
func (s *session) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.EOF
	}

	format := s.format
	if format == FormatPlanarFloat32 {
		format = FormatFloat32
	}
	bps := format.bytesPerSample()

	n := 0
	for len(p)-n >= bps {
		if s.off == len(s.block) {
			s.render()
		}
		c := convertFromUser(p[n:], s.block[s.off:], format)
		s.off += c
		n += c * bps
	}

	return n, nil
}

// RenderPlanar fills out, one slice per channel, for callback-style
// devices. A closed session renders silence.
func (s *session) RenderPlanar(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(out) != s.channels {
		for _, p := range out {
			clear(p)
		}
		return
	}

	want := len(out[0])
	for done := 0; done < want; {
		if s.off == len(s.block) {
			s.render()
		}
		w := audio.DeinterleaveInto(out, s.block[s.off:], done)
		if w == 0 {
			break
		}
		s.off += w * s.channels
		done += w
	}
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// rendered is the number of callback invocations so far.
func (s *session) rendered() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.blocks
}
