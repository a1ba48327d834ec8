// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"
)

// SampleFormat is the layout handed to the output device.
type SampleFormat int

const (
	// FormatFloat32 is interleaved little-endian float32.
	FormatFloat32 SampleFormat = iota
	// FormatInt16 is interleaved little-endian signed 16-bit.
	FormatInt16
	// FormatPlanarFloat32 is one float32 slice per channel.
	FormatPlanarFloat32
)

func (f SampleFormat) String() string {
	switch f {
	case FormatFloat32:
		return "float32le"
	case FormatInt16:
		return "int16le"
	case FormatPlanarFloat32:
		return "planar-float32"
	default:
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
}

// bytesPerSample is the encoded size of one interleaved sample.
func (f SampleFormat) bytesPerSample() int {
	if f == FormatInt16 {
		return 2
	}
	return 4
}

// StreamConfig is what a Device is asked to open.
type StreamConfig struct {
	SampleRate int
	Channels   int
	FrameSize  int
	Format     SampleFormat
}

// Renderer produces audio for a stream. Pull-style backends read bytes in
// the configured interleaved format; callback-style backends ask for
// planar float32.
type Renderer interface {
	io.Reader
	RenderPlanar(out [][]float32)
}

// Device opens output streams.
type Device interface {
	Open(cfg StreamConfig, r Renderer) (Stream, error)
}

// Stream is an opened output. Close stops audio before returning.
type Stream interface {
	Start() error
	Close() error
}
