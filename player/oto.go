// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process, so it is shared by every
// OtoDevice and cannot change format once created.
var (
	otoMu      sync.Mutex
	otoCtx     *oto.Context
	otoOptions oto.NewContextOptions
)

var errOtoFormat = errors.New("oto context already open with a different format")

// OtoDevice plays through github.com/ebitengine/oto/v3. It supports the
// interleaved formats only.
type OtoDevice struct {
	// BufferSize is the driver buffer duration; zero lets oto choose.
	BufferSize time.Duration
}

func (d OtoDevice) Open(cfg StreamConfig, r Renderer) (Stream, error) {
	var format oto.Format
	switch cfg.Format {
	case FormatFloat32:
		format = oto.FormatFloat32LE
	case FormatInt16:
		format = oto.FormatSignedInt16LE
	default:
		return nil, fmt.Errorf("oto cannot play %s", cfg.Format)
	}

	ctx, err := sharedContext(oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       format,
		BufferSize:   d.BufferSize,
	})
	if err != nil {
		return nil, err
	}

	player := ctx.NewPlayer(r)
	player.SetBufferSize(cfg.FrameSize * cfg.Channels * cfg.Format.bytesPerSample())

	return &otoStream{player: player}, nil
}

func sharedContext(opts oto.NewContextOptions) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if otoOptions.SampleRate != opts.SampleRate ||
			otoOptions.ChannelCount != opts.ChannelCount ||
			otoOptions.Format != opts.Format {
			return nil, fmt.Errorf("%w: have %d Hz %d ch", errOtoFormat, otoOptions.SampleRate, otoOptions.ChannelCount)
		}
		return otoCtx, nil
	}

	ctx, ready, err := oto.NewContext(&opts)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	otoCtx = ctx
	otoOptions = opts

	return ctx, nil
}

// otoPlayer is the part of *oto.Player a stream drives.
type otoPlayer interface {
	Play()
	Pause()
	Err() error
}

type otoStream struct {
	player otoPlayer
}

func (s *otoStream) Start() error {
	s.player.Play()
	return s.player.Err()
}

// Close pauses the player so the device stops pulling. oto releases the
// player itself once it is unreachable.
func (s *otoStream) Close() error {
	s.player.Pause()
	return s.player.Err()
}
