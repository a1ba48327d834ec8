// SPDX-License-Identifier: EPL-2.0

package audiofile

import "github.com/ik5/audios/audio"

const defaultBitDepth = 16

type options struct {
	registry *audio.Registry
	channels int
	quality  audio.Quality
	bitDepth int
}

// Option configures Load and Create. Options that do not apply to one of
// them are ignored there.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		registry: DefaultRegistry(),
		quality:  audio.QualityCubic,
		bitDepth: defaultBitDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRegistry replaces the default format registry.
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithChannels remixes the decoded file to n channels on Load.
func WithChannels(n int) Option {
	return func(o *options) { o.channels = n }
}

// WithQuality picks the resampler used on Load when rates differ.
func WithQuality(q audio.Quality) Option {
	return func(o *options) { o.quality = q }
}

// WithBitDepth sets the PCM sample size used by Create: 16, 24 or 32.
func WithBitDepth(bits int) Option {
	return func(o *options) { o.bitDepth = bits }
}
