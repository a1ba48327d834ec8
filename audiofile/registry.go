// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"sync"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/formats/aiff"
	"github.com/ik5/audios/formats/flac"
	"github.com/ik5/audios/formats/mp3"
	"github.com/ik5/audios/formats/vorbis"
	"github.com/ik5/audios/formats/wav"
)

var defaultRegistry = sync.OnceValue(func() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("aiff", aiff.Encoder{})
	reg.RegisterEncoder("aif", aiff.Encoder{})

	return reg
})

// DefaultRegistry returns the shared registry with every bundled format.
// Registering into it affects all Readers and Writers that do not pass
// WithRegistry.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}
