// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audios/internal/audiotest"
)

type stuckSource struct{ audiotest.FailingSource }

func (stuckSource) ReadSamples([]float32) (int, error) { return 0, nil }

func TestCollect(t *testing.T) {
	t.Parallel()

	got, err := Collect(audiotest.NewRampSource(8000, 2, 1000), 300)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 2000 {
		t.Fatalf("Collect() returned %d samples, want 2000", len(got))
	}
	if got[2*999] != 0.999 {
		t.Errorf("last frame = %v, want 0.999", got[2*999])
	}
}

func TestCollect_DefaultBufferSize(t *testing.T) {
	t.Parallel()

	got, err := Collect(audiotest.NewSilentSource(8000, 1, 5000), 0)
	if err != nil || len(got) != 5000 {
		t.Errorf("Collect() = (%d samples, %v), want (5000, nil)", len(got), err)
	}
}

func TestCollect_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Collect(audiotest.FailingSource{Rate: 8000, Chans: 1}, 64); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Collect(failing) error = %v, want ErrInjected", err)
	}

	stuck := stuckSource{audiotest.FailingSource{Rate: 8000, Chans: 1}}
	if _, err := Collect(stuck, 64); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Collect(stuck) error = %v, want io.ErrNoProgress", err)
	}
}

func TestBufferSource(t *testing.T) {
	t.Parallel()

	src := NewBufferSource([]float32{1, 2, 3, 4, 5, 6}, Format{SampleRate: 8000, Channels: 2})

	buf := make([]float32, 5) // rounded down to 2 frames
	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("second ReadSamples() = (%d, %v), want (2, io.EOF)", n, err)
	}
	if buf[0] != 5 || buf[1] != 6 {
		t.Errorf("second read = %v, want [5 6 ...]", buf[:2])
	}
}
