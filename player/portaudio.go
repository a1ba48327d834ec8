//go:build portaudio

// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PortAudioDevice plays through the default PortAudio output using a
// non-interleaved float32 callback, whatever Format is configured.
type PortAudioDevice struct{}

func (PortAudioDevice) Open(cfg StreamConfig, r Renderer) (Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, cfg.Channels, float64(cfg.SampleRate), cfg.FrameSize, r.RenderPlanar)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio open: %w", err)
	}

	return &portAudioStream{stream: stream}, nil
}

type portAudioStream struct {
	stream  *portaudio.Stream
	started bool
}

func (s *portAudioStream) Start() error {
	if err := s.stream.Start(); err != nil {
		return err
	}
	s.started = true
	return nil
}

func (s *portAudioStream) Close() error {
	var errs []error
	if s.started {
		errs = append(errs, s.stream.Stop())
	}
	errs = append(errs, s.stream.Close(), portaudio.Terminate())
	return errors.Join(errs...)
}
