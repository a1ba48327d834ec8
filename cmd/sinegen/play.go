// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/audiofile"
	"github.com/ik5/audios/internal/cli"
	"github.com/ik5/audios/internal/tone"
	"github.com/ik5/audios/player"
)

// OutputFlags select and shape the output stream.
type OutputFlags struct {
	Rate      int           `help:"Sample rate in Hz." default:"${rate}"`
	Channels  int           `help:"Output channel count." default:"${channels}"`
	FrameSize int           `help:"Frames per render callback." default:"${framesize}"`
	Format    string        `help:"Device sample layout." enum:"float32,int16,planar" default:"float32"`
	Backend   string        `help:"Output backend." enum:"oto,portaudio" default:"oto"`
	Duration  time.Duration `help:"Stop after this long; 0 runs until interrupted." default:"0s"`
}

func (o OutputFlags) newPlayer(g *Globals) (*player.Player, error) {
	var dev player.Device = player.OtoDevice{}
	if o.Backend == "portaudio" {
		dev = player.PortAudioDevice{}
	}

	format := player.FormatFloat32
	switch o.Format {
	case "int16":
		format = player.FormatInt16
	case "planar":
		format = player.FormatPlanarFloat32
	}

	return player.New(o.Rate, o.FrameSize, o.Channels,
		player.WithDevice(dev),
		player.WithSampleFormat(format),
		player.WithLogger(g.Logger()),
	)
}

// wait blocks until interrupted, the duration elapses or done closes.
func (o OutputFlags) wait(done <-chan struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if o.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Duration)
		defer cancel()
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

type PlayCmd struct {
	OutputFlags

	Frequency float64 `help:"Tone frequency in Hz." default:"${frequency}"`
	Amplitude float32 `help:"Peak amplitude, 0 to 1." default:"${amplitude}"`
}

func (c *PlayCmd) Run(g *Globals) error {
	p, err := c.newPlayer(g)
	if err != nil {
		return err
	}
	defer p.Close()

	osc := tone.NewSine(c.Frequency, c.Amplitude, c.Rate, c.Channels)
	if err := p.Start(tone.Render, osc); err != nil {
		return err
	}

	cli.PrintInfo("Playing", fmt.Sprintf("%.1f Hz at %d Hz, %d ch", c.Frequency, c.Rate, c.Channels))
	c.wait(nil)

	return p.Close()
}

type LoopCmd struct {
	OutputFlags

	Path    string `arg:"" type:"existingfile" help:"Audio file to play."`
	Once    bool   `help:"Play once and exit instead of looping."`
	Quality string `help:"Resampler used when the file rate differs." enum:"cubic,low,medium,high,veryhigh" default:"${quality}"`
}

// fileFeed is the userData for renderFile.
type fileFeed struct {
	reader *audiofile.Reader
	done   chan struct{}
	once   sync.Once
}

func renderFile(buf []float32, numFrames int, userData any) {
	feed := userData.(*fileFeed)
	copy(buf, feed.reader.Next(numFrames))
	if feed.reader.AtEOF() {
		feed.once.Do(func() { close(feed.done) })
	}
}

func (c *LoopCmd) Run(g *Globals) error {
	q, err := audio.ParseQuality(c.Quality)
	if err != nil {
		return err
	}

	r, err := audiofile.Load(c.Path, c.Rate, audiofile.WithChannels(c.Channels), audiofile.WithQuality(q))
	if err != nil {
		return err
	}
	defer r.Close()
	r.SetRepeatOn(!c.Once)

	p, err := c.newPlayer(g)
	if err != nil {
		return err
	}
	defer p.Close()

	feed := &fileFeed{reader: r, done: make(chan struct{})}
	if err := p.Start(renderFile, feed); err != nil {
		return err
	}

	cli.PrintInfo("Playing", fmt.Sprintf("%s (%s, %s)", c.Path, r.Container(), r.Format().Duration(r.Frames()).Round(time.Millisecond)))
	c.wait(feed.done)

	return p.Close()
}
