// SPDX-License-Identifier: EPL-2.0

package audios

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/audiofile"
)

func writeSine(t *testing.T, path string, rate, channels, frames int) {
	t.Helper()

	w, err := audiofile.Create(path, rate, channels)
	require.NoError(t, err)

	buf := make([]float32, frames*channels)
	for f := range frames {
		v := float32(0.5 * math.Sin(2*math.Pi*440*float64(f)/float64(rate)))
		for c := range channels {
			buf[f*channels+c] = v
		}
	}
	require.NoError(t, w.WriteSamples(buf))
	require.NoError(t, w.Close())
}

func TestConvert_SameRate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.aiff")
	writeSine(t, in, 8000, 2, 10000)

	n, err := Convert(in, out, 0, audiofile.WithBitDepth(24))
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	info, err := audiofile.Probe(out)
	require.NoError(t, err)
	assert.Equal(t, "aiff", info.Container)
	assert.Equal(t, audio.Format{SampleRate: 8000, Channels: 2}, info.Format)
	assert.Equal(t, 10000, info.Frames)
}

func TestConvert_ResampleAndDownmix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeSine(t, in, 44100, 2, 44100)

	n, err := Convert(in, out, 8000, audiofile.WithChannels(1))
	require.NoError(t, err)
	assert.InDelta(t, 8000, n, 4)

	r, err := audiofile.Load(out, 0)
	require.NoError(t, err)
	assert.Equal(t, 8000, r.SampleRate())
	assert.Equal(t, 1, r.NumChannels())
	assert.Equal(t, n, r.Frames())
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Convert(filepath.Join(dir, "missing.wav"), filepath.Join(dir, "out.wav"), 0)
	require.ErrorIs(t, err, audio.ErrFileNotFound)

	in := filepath.Join(dir, "in.wav")
	writeSine(t, in, 8000, 1, 100)
	_, err = Convert(in, filepath.Join(dir, "out.ogg"), 0)
	require.ErrorIs(t, err, audio.ErrUnsupportedFormat)
}
