// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/internal/audiotest"
)

// createWAVFile builds a canonical 44-byte-header WAV.
func createWAVFile(sampleRate, channels, formatTag int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	got, err := audio.Collect(src, 64)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return got
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, formatPCM, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := readAll(t, src)
	want := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 0.001 {
			t.Errorf("got[%d] = %v, want ≈%v", i, got[i], want[i])
		}
	}
}

func TestDecoder_StereoNonSeekable(t *testing.T) {
	t.Parallel()

	data := createWAVFile(44100, 2, formatPCM, []int16{100, 200, 300, 400, 500, 600})
	// MultiReader hides Seek, so the decoder has to buffer.
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Errorf("format = %d Hz %d ch, want 44100 Hz 2 ch", src.SampleRate(), src.Channels())
	}
	if got := readAll(t, src); len(got) != 6 {
		t.Errorf("decoded %d samples, want 6", len(got))
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, JUST TEXT PADDING")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_FloatFormatRejected(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 3, []int16{1, 2, 3, 4})))
	if err == nil {
		t.Error("Decode() error = nil, want error for IEEE float format tag")
	}
}

func TestSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, formatPCM, []int16{100, 200})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, io.EOF)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth  int
		tolerance float64
	}{
		{16, 1.0 / 16384},
		{24, 1.0 / (1 << 22)},
		{32, 1e-6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-bit", tt.bitDepth), func(t *testing.T) {
			t.Parallel()

			f := audio.Format{SampleRate: 22050, Channels: 2}
			want := make([]float32, 2*500)
			for i := range want {
				want[i] = float32(math.Sin(float64(i) * 0.01))
			}

			out := &audiotest.WriteSeeker{}
			sink, err := Encoder{}.Encode(out, f, tt.bitDepth)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if _, err := sink.WriteSamples(want[:400]); err != nil {
				t.Fatalf("WriteSamples() error = %v", err)
			}
			if _, err := sink.WriteSamples(want[400:]); err != nil {
				t.Fatalf("WriteSamples() error = %v", err)
			}
			if err := sink.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(out.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if audio.FormatOf(src) != f {
				t.Errorf("decoded format = %v, want %v", audio.FormatOf(src), f)
			}

			got := readAll(t, src)
			if len(got) != len(want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if diff := math.Abs(float64(got[i] - want[i])); diff > tt.tolerance {
					t.Fatalf("sample %d = %v, want %v (diff %v)", i, got[i], want[i], diff)
				}
			}
		})
	}
}

func TestEncoder_Errors(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 8000, Channels: 1}
	if _, err := (Encoder{}).Encode(&audiotest.WriteSeeker{}, f, 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(8-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := (Encoder{}).Encode(&audiotest.WriteSeeker{}, audio.Format{}, 16); !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("Encode(zero format) error = %v, want ErrInvalidFormat", err)
	}

	sink, err := Encoder{}.Encode(&audiotest.WriteSeeker{}, audio.Format{SampleRate: 8000, Channels: 2}, 16)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := sink.WriteSamples([]float32{0.1, 0.2, 0.3}); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("WriteSamples(partial frame) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestDecoder_EmptyDataChunk(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, formatPCM, nil)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
