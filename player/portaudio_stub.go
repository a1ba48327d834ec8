//go:build !portaudio

// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var errNoPortAudio = errors.New("built without portaudio support (use -tags portaudio)")

// PortAudioDevice is unavailable in this build; Open always fails.
type PortAudioDevice struct{}

func (PortAudioDevice) Open(StreamConfig, Renderer) (Stream, error) {
	return nil, errNoPortAudio
}
