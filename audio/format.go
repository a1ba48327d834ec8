// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Format describes an interleaved float32 stream. Bit depth is not part of
// it: samples are always float32 once decoded.
type Format struct {
	SampleRate int
	Channels   int
}

// FormatOf returns the format of src.
func FormatOf(src Source) Format {
	return Format{SampleRate: src.SampleRate(), Channels: src.Channels()}
}

func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidFormat, f.SampleRate, f.Channels)
	}
	return nil
}

// Samples converts a frame count to a sample count.
func (f Format) Samples(frames int) int { return frames * f.Channels }

// Frames converts a sample count to whole frames.
func (f Format) Frames(samples int) int {
	if f.Channels == 0 {
		return 0
	}
	return samples / f.Channels
}

// Duration of frames at f.SampleRate.
func (f Format) Duration(frames int) time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	return time.Duration(int64(frames) * int64(time.Second) / int64(f.SampleRate))
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch", f.SampleRate, f.Channels)
}
