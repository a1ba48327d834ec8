// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ik5/audios/audio"
)

// Callback fills buf with numFrames interleaved frames. It runs on the
// device's render goroutine and must not block or call back into the
// Player. userData is the value given to Start, unchanged.
type Callback func(buf []float32, numFrames int, userData any)

// State of a Player.
type State int

const (
	StateConfigured State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Player streams callback-rendered audio to an output device.
type Player struct {
	mu      sync.Mutex
	cfg     StreamConfig
	device  Device
	logger  *log.Logger
	state   State
	stream  Stream
	session *session
}

// Option configures New.
type Option func(*Player)

// WithDevice selects the output backend. The default is OtoDevice.
func WithDevice(d Device) Option {
	return func(p *Player) {
		if d != nil {
			p.device = d
		}
	}
}

// WithSampleFormat selects the layout handed to the device.
func WithSampleFormat(f SampleFormat) Option {
	return func(p *Player) { p.cfg.Format = f }
}

// WithLogger sets where lifecycle messages go. Pass nil to silence them.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		p.logger = l
	}
}

// New configures a player. No device is touched until Start.
func New(sampleRate, frameSize, numChannels int, opts ...Option) (*Player, error) {
	if err := (audio.Format{SampleRate: sampleRate, Channels: numChannels}).Validate(); err != nil {
		return nil, err
	}
	if frameSize <= 0 {
		return nil, fmt.Errorf("%w: frame size %d", audio.ErrInvalidFormat, frameSize)
	}

	p := &Player{
		cfg: StreamConfig{
			SampleRate: sampleRate,
			Channels:   numChannels,
			FrameSize:  frameSize,
			Format:     FormatFloat32,
		},
		device: OtoDevice{},
		logger: log.Default(),
		state:  StateConfigured,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Start opens the device and begins calling cb with exactly FrameSize
// frames per call. A player starts at most once.
func (p *Player) Start(cb Callback, userData any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateConfigured {
		return fmt.Errorf("%w: start while %s", audio.ErrInvalidState, p.state)
	}
	if cb == nil {
		return fmt.Errorf("%w: nil callback", audio.ErrInvalidState)
	}

	sess := newSession(p.cfg, cb, userData)

	stream, err := p.device.Open(p.cfg, sess)
	if err = checkError(err, "open", audio.ErrDeviceOpenFailed); err != nil {
		p.logger.Printf("player: %v", err)
		return err
	}

	if err = checkError(stream.Start(), "start", audio.ErrDeviceStartFailed); err != nil {
		p.logger.Printf("player: %v", err)
		sess.close()
		stream.Close()
		return err
	}

	p.stream = stream
	p.session = sess
	p.state = StateRunning

	p.logger.Printf("player: started %d Hz, %d channels, %d frames/block, %s",
		p.cfg.SampleRate, p.cfg.Channels, p.cfg.FrameSize, p.cfg.Format)

	return nil
}

// Close stops the stream and releases the device. It is safe to call
// more than once; a closed player cannot be started again.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateClosed {
		return nil
	}

	var err error
	if p.state == StateRunning {
		p.session.close()
		err = p.stream.Close()
		p.logger.Printf("player: stopped after %d blocks", p.session.rendered())
	}
	p.state = StateClosed

	if err != nil {
		return fmt.Errorf("close stream: %w", err)
	}
	return nil
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *Player) SampleRate() int            { return p.cfg.SampleRate }
func (p *Player) FrameSize() int             { return p.cfg.FrameSize }
func (p *Player) NumChannels() int           { return p.cfg.Channels }
func (p *Player) SampleFormat() SampleFormat { return p.cfg.Format }
