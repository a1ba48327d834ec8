// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
)

// Remixer changes the channel count of src. It averages down to mono and
// duplicates mono up to any count; equal counts pass through.
type Remixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewRemixer(src Source, channels int) (*Remixer, error) {
	in := src.Channels()
	if channels <= 0 || (in != channels && channels != 1 && in != 1) {
		return nil, fmt.Errorf("%w: %d -> %d channels", ErrUnsupportedChannelMapping, in, channels)
	}

	return &Remixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}, nil
}

// NewMonoMixer averages all channels of src into one.
func NewMonoMixer(src Source) *Remixer {
	m, _ := NewRemixer(src, 1)
	return m
}

func (m *Remixer) SampleRate() int { return m.src.SampleRate() }
func (m *Remixer) Channels() int   { return m.channels }
func (m *Remixer) BufSize() int    { return m.src.BufSize() }

func (m *Remixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("remixer source: %w", err)
	}
	return nil
}

func (m *Remixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / m.channels
	need := frames * in

	// grow but never shrink
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames = n / in

	if m.channels == 1 {
		downmix(dst, m.tmp, frames, in)
		return frames, err
	}

	// mono to N
	for f := range frames {
		v := m.tmp[f]
		out := dst[f*m.channels : (f+1)*m.channels]
		for c := range out {
			out[c] = v
		}
	}

	return frames * m.channels, err
}

func downmix(dst, src []float32, frames, channels int) {
	switch channels {
	case 2:
		for f := range frames {
			i := f << 1
			dst[f] = (src[i] + src[i+1]) * 0.5
		}
	case 4:
		for f := range frames {
			i := f << 2
			dst[f] = (src[i] + src[i+1] + src[i+2] + src[i+3]) * 0.25
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			for _, v := range src[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}
}
