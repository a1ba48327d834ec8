// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audios/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// When downsampling, a one-pole low-pass runs on the input first.
//
// The last source frame is held for one extra interval so that N input
// frames produce about N*dstRate/srcRate output frames.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[0..3] = t-1, t0, t+1, t+2 around the interpolation point
	window [4][]float32
	valid  [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frameBuf []float32
	last     []float32
	hasLast  bool
	held     bool
	eof      bool

	lowpass bool
	seeded  bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		last:     make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler source: %w", err)
	}
	return nil
}

// nextFrame writes the next input frame into dst. After the source ends it
// yields the held tail frame once, then reports false.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for empty := 0; !r.eof; empty++ {
		if empty == maxEmptyReads {
			return false, fmt.Errorf("resampler read: %w", io.ErrNoProgress)
		}

		n, err := r.src.ReadSamples(r.frameBuf)
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("resampler read: %w", err)
		}

		if n >= r.channels {
			r.filter(r.frameBuf)
			copy(dst, r.frameBuf)
			copy(r.last, r.frameBuf)
			r.hasLast = true
			return true, nil
		}
	}

	if r.hasLast && !r.held {
		r.held = true
		copy(dst, r.last)
		return true, nil
	}

	return false, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowpass {
		return
	}
	if !r.seeded {
		// start from the first frame to avoid a ramp-in
		copy(r.state, frame)
		r.seeded = true
	}
	for c := range r.channels {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.valid[1] = true
	// no frame before the first one: window[0] mirrors window[1]
	copy(r.window[0], r.window[1])

	for i := 2; i < len(r.window); i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
	}

	return nil
}

// advance shifts the window one frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.valid[:], r.valid[1:])
	r.window[3] = first
	r.valid[3] = false

	if r.valid[2] {
		ok, err := r.nextFrame(r.window[3])
		if err != nil {
			return err
		}
		r.valid[3] = ok
	}

	if !r.valid[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels:]
		for c := range r.channels {
			y3 := r.window[2][c]
			if r.valid[3] {
				y3 = r.window[3][c]
			}
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
