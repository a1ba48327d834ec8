// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"fmt"
	"time"

	"github.com/ik5/audios/audio"
)

// Info describes a file as stored, before any conversion.
type Info struct {
	Path      string
	Container string
	Format    audio.Format
	Frames    int
	Duration  time.Duration
}

// Probe decodes path at its native rate and channel count and reports
// what it found.
func Probe(path string, opts ...Option) (Info, error) {
	o := newOptions(opts)

	src, container, err := openSource(path, o.registry)
	if err != nil {
		return Info{}, err
	}
	defer src.Close()

	f := audio.FormatOf(src)
	samples, err := audio.Collect(src, 0)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %w", audio.ErrUnsupportedFormat, path, err)
	}

	frames := f.Frames(len(samples))

	return Info{
		Path:      path,
		Container: container,
		Format:    f,
		Frames:    frames,
		Duration:  f.Duration(frames),
	}, nil
}
