// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audios/audio"
)

// Writer streams interleaved samples into a WAV or AIFF file. The
// container comes from the file extension.
type Writer struct {
	path   string
	file   *os.File
	sink   audio.Sink
	format audio.Format
	frames int
	closed bool
}

// Create opens path for writing, truncating any existing file.
func Create(path string, sampleRate, numChannels int, opts ...Option) (*Writer, error) {
	o := newOptions(opts)

	f := audio.Format{SampleRate: sampleRate, Channels: numChannels}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	container := extFormat(path)
	enc, ok := o.registry.Encoder(container)
	if !ok {
		return nil, fmt.Errorf("%w: cannot write %q files", audio.ErrUnsupportedFormat, container)
	}

	switch o.bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit output", audio.ErrUnsupportedFormat, o.bitDepth)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrCannotCreateFile, err)
	}

	sink, err := enc.Encode(file, f, o.bitDepth)
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: %w", audio.ErrUnsupportedFormat, err)
	}

	return &Writer{
		path:   path,
		file:   file,
		sink:   sink,
		format: f,
	}, nil
}

// WriteSamples appends samples, which must hold whole frames.
func (w *Writer) WriteSamples(samples []float32) error {
	if w.closed {
		return fmt.Errorf("%w: write to closed %s", audio.ErrInvalidState, w.path)
	}
	if len(samples)%w.format.Channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidDstSize, len(samples), w.format.Channels)
	}

	n, err := w.sink.WriteSamples(samples)
	w.frames += w.format.Frames(n)
	if err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}

	return nil
}

// Close writes the final header sizes and closes the file. Calling Close
// again does nothing.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return errors.Join(w.sink.Close(), w.file.Close())
}

func (w *Writer) IsClosed() bool       { return w.closed }
func (w *Writer) FramesWritten() int   { return w.frames }
func (w *Writer) Format() audio.Format { return w.format }
func (w *Writer) Path() string         { return w.path }
