// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audios/internal/audiotest"
)

func TestRemixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 1, 100, 0.5))
	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestRemixer_Downmix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"stereo", 2, 0.5},
		{"quad", 4, 1.5},
		{"5.1", 6, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// channel c carries value c, so the average is (channels-1)/2
			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_ int, channel int) float32 {
				return float32(channel)
			})
			mixer := NewMonoMixer(src)

			buf := make([]float32, 20)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 20 {
				t.Fatalf("ReadSamples() n = %d, want 20", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestRemixer_Upmix(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 8)
	mixer, err := NewRemixer(src, 3)
	if err != nil {
		t.Fatalf("NewRemixer() error = %v", err)
	}

	buf := make([]float32, 24)
	n, _ := mixer.ReadSamples(buf)
	if n != 24 {
		t.Fatalf("ReadSamples() n = %d, want 24", n)
	}
	for f := range 8 {
		want := float32(f) / 8
		for c := range 3 {
			if buf[f*3+c] != want {
				t.Errorf("frame %d channel %d = %v, want %v", f, c, buf[f*3+c], want)
			}
		}
	}
}

func TestRemixer_UnsupportedMapping(t *testing.T) {
	t.Parallel()

	_, err := NewRemixer(audiotest.NewSilentSource(8000, 2, 10), 4)
	if !errors.Is(err, ErrUnsupportedChannelMapping) {
		t.Errorf("NewRemixer(2 -> 4) error = %v, want ErrUnsupportedChannelMapping", err)
	}

	_, err = NewRemixer(audiotest.NewSilentSource(8000, 2, 10), 0)
	if !errors.Is(err, ErrUnsupportedChannelMapping) {
		t.Errorf("NewRemixer(2 -> 0) error = %v, want ErrUnsupportedChannelMapping", err)
	}
}

func TestRemixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
