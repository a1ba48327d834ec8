// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/ik5/audios/audio"
)

// Reader holds a whole decoded file in memory at a fixed rate and channel
// count and hands it out in fixed-size buffers. Past the end it either
// wraps to the start (repeat on) or yields silence.
//
// Reader is not safe for concurrent use, except SetRepeatOn and IsRepeatOn.
type Reader struct {
	path      string
	container string
	format    audio.Format
	samples   []float32
	pos       int // sample index into samples
	repeat    atomic.Bool
	buf       []float32
	closed    bool
}

// Load decodes path and converts it to targetRate. A targetRate of 0 keeps
// the file's own rate.
func Load(path string, targetRate int, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	if targetRate < 0 {
		return nil, fmt.Errorf("%w: target %d Hz", audio.ErrInvalidFormat, targetRate)
	}

	src, container, err := openSource(path, o.registry)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if targetRate == 0 {
		targetRate = src.SampleRate()
	}

	samples, f, err := decodeAll(src, targetRate, o)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, err)
	}

	return &Reader{
		path:      path,
		container: container,
		format:    f,
		samples:   samples,
	}, nil
}

// openSource opens path and picks a decoder by extension, then by content.
// A file whose extension names the wrong container is retried with the
// sniffed one. The returned Source owns the file.
func openSource(path string, reg *audio.Registry) (audio.Source, string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", audio.ErrFileNotFound, path)
		}
		return nil, "", fmt.Errorf("%w: open %s: %w", audio.ErrFileNotFound, path, err)
	}

	src, container, err := decodeFile(file, path, reg)
	if err != nil {
		file.Close()
		return nil, "", err
	}

	return &fileSource{Source: src, file: file}, container, nil
}

func decodeFile(file *os.File, path string, reg *audio.Registry) (audio.Source, string, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("%w: stat %s: %w", audio.ErrFileNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, "", fmt.Errorf("%w: %s: not a regular file", audio.ErrUnsupportedFormat, path)
	}

	container := extFormat(path)
	if dec, ok := reg.Get(container); ok {
		src, decErr := dec.Decode(file)
		if decErr == nil {
			return src, container, nil
		}

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, decErr)
		}
		sniffed, err := sniffReader(file)
		if err != nil || sniffed == "" || sniffed == container {
			return nil, "", fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, decErr)
		}
		container = sniffed
	} else {
		container, err = sniffReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, err)
		}
	}

	dec, ok := reg.Get(container)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, path)
	}

	src, err := dec.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, err)
	}

	return src, container, nil
}

// fileSource closes the decoder and then the file under it.
type fileSource struct {
	audio.Source
	file *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// decodeAll remixes and resamples src into memory.
func decodeAll(src audio.Source, targetRate int, o options) ([]float32, audio.Format, error) {
	if o.channels > 0 && o.channels != src.Channels() {
		remixed, err := audio.NewRemixer(src, o.channels)
		if err != nil {
			return nil, audio.Format{}, err
		}
		src = remixed
	}

	f := audio.Format{SampleRate: targetRate, Channels: src.Channels()}

	if o.quality == audio.QualityCubic && src.SampleRate() != targetRate {
		samples, err := audio.Collect(audio.NewResampler(src, targetRate), 0)
		return samples, f, err
	}

	samples, err := audio.Collect(src, 0)
	if err != nil {
		return nil, f, err
	}
	if src.SampleRate() == targetRate {
		return samples, f, nil
	}

	samples, err = audio.ResampleBuffer(samples, audio.FormatOf(src), targetRate, o.quality)
	return samples, f, err
}

// Next returns exactly frames × NumChannels() samples. The slice is reused
// by the next call to Next.
func (r *Reader) Next(frames int) []float32 {
	if frames <= 0 {
		return r.buf[:0]
	}

	size := r.format.Samples(frames)
	if cap(r.buf) < size {
		r.buf = make([]float32, size)
	}
	r.buf = r.buf[:size]
	r.fill(r.buf)

	return r.buf
}

// ReadSamples fills the whole frames of dst and never returns io.EOF; use
// AtEOF to detect the end when repeat is off. It fails with
// audio.ErrInvalidState once the reader is closed.
func (r *Reader) ReadSamples(dst []float32) (int, error) {
	if r.closed {
		return 0, fmt.Errorf("%w: read from closed %s", audio.ErrInvalidState, r.path)
	}
	want := len(dst) - len(dst)%r.format.Channels
	if want == 0 && len(dst) > 0 {
		return 0, audio.ErrInvalidDstSize
	}
	r.fill(dst[:want])
	return want, nil
}

func (r *Reader) fill(dst []float32) {
	n := 0
	for n < len(dst) {
		if r.pos >= len(r.samples) {
			if !r.repeat.Load() || len(r.samples) == 0 {
				clear(dst[n:])
				return
			}
			r.pos = 0
		}

		c := copy(dst[n:], r.samples[r.pos:])
		r.pos += c
		n += c
	}
}

// SetRepeatOn switches looping. The change applies the next time the read
// position reaches the end, including a reader already parked there.
func (r *Reader) SetRepeatOn(on bool) { r.repeat.Store(on) }

func (r *Reader) IsRepeatOn() bool { return r.repeat.Load() }

// AtEOF reports whether reads now yield silence.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.samples) && (!r.repeat.Load() || len(r.samples) == 0)
}

// Rewind moves the read position back to the first frame.
func (r *Reader) Rewind() { r.pos = 0 }

// Position is the index of the next frame to be read.
func (r *Reader) Position() int { return r.format.Frames(r.pos) }

// Frames is the length of the converted file in frames.
func (r *Reader) Frames() int { return r.format.Frames(len(r.samples)) }

func (r *Reader) NumChannels() int     { return r.format.Channels }
func (r *Reader) Channels() int        { return r.format.Channels }
func (r *Reader) SampleRate() int      { return r.format.SampleRate }
func (r *Reader) Format() audio.Format { return r.format }
func (r *Reader) Container() string    { return r.container }
func (r *Reader) Path() string         { return r.path }
func (r *Reader) BufSize() int         { return r.format.Samples(1024) }

// Close drops the decoded samples. ReadSamples then fails and Next yields
// silence.
func (r *Reader) Close() error {
	r.closed = true
	r.samples = nil
	r.pos = 0
	return nil
}
