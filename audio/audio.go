// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Sink is the write side of a Source: it accepts interleaved float32
// samples in [-1,1] and stores them in some container.
type Sink interface {
	SampleRate() int
	Channels() int
	// WriteSamples appends src. len(src) must be a multiple of Channels().
	WriteSamples(src []float32) (n int, err error)
	// Close finalizes the container. It does not close the underlying writer.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder constructs a Sink that writes f at bitDepth into w.
// Containers with size fields in their header need to seek back on Close.
type Encoder interface {
	Encode(w io.WriteSeeker, f Format, bitDepth int) (Sink, error)
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.decoders[format]
	return d, ok
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

func (r *Registry) Encoder(format string) (Encoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.encoders[format]
	return e, ok
}

// Formats lists the keys that have a decoder, sorted.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
