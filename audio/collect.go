// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated before a
// source is considered stuck.
const maxEmptyReads = 100

// Collect reads src until io.EOF and returns every sample it produced.
// bufferSize is rounded down to whole frames; values < 1 frame use
// src.BufSize().
func Collect(src Source, bufferSize int) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFormat, channels)
	}

	if bufferSize < channels {
		bufferSize = src.BufSize()
	}
	bufferSize -= bufferSize % channels
	if bufferSize < channels {
		bufferSize = channels * 1024
	}

	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize*4)

	for empty := 0; ; {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty == maxEmptyReads {
				return out, fmt.Errorf("collect: %w", io.ErrNoProgress)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("collect: %w", err)
		}
	}

	// drop a trailing partial frame
	out = out[:len(out)-len(out)%channels]

	return out, nil
}
