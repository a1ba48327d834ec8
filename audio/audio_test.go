// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/audios/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

type mockEncoder struct{}

func (mockEncoder) Encode(io.WriteSeeker, Format, int) (Sink, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}

	if got := registry.Formats(); !slices.Equal(got, []string{"mp3", "wav"}) {
		t.Errorf("Registry.Formats() = %v, want [mp3 wav]", got)
	}
}

func TestRegistry_Encoders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterEncoder("wav", mockEncoder{})

	if _, ok := registry.Encoder("wav"); !ok {
		t.Error("Registry.Encoder(\"wav\") not found after RegisterEncoder")
	}
	if _, ok := registry.Encoder("mp3"); ok {
		t.Error("Registry.Encoder(\"mp3\") found, want missing")
	}
	if _, ok := registry.Get("wav"); ok {
		t.Error("encoder registration leaked into decoders")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", decoder)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("format")
		}()
	}
	wg.Wait()

	if got, ok := registry.Get("format"); !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 48000, Channels: 2}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := f.Samples(10); got != 20 {
		t.Errorf("Samples(10) = %d, want 20", got)
	}
	if got := f.Frames(21); got != 10 {
		t.Errorf("Frames(21) = %d, want 10", got)
	}
	if got := f.Duration(24000).Seconds(); got != 0.5 {
		t.Errorf("Duration(24000) = %vs, want 0.5s", got)
	}

	for _, bad := range []Format{{0, 2}, {44100, 0}, {-1, 1}} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Validate(%v) = nil, want error", bad)
		}
	}
}
