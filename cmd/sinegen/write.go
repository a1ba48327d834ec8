// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/audios"
	"github.com/ik5/audios/audio"
	"github.com/ik5/audios/audiofile"
	"github.com/ik5/audios/internal/cli"
	"github.com/ik5/audios/internal/config"
	"github.com/ik5/audios/internal/tone"
)

type WriteCmd struct {
	Output    string  `arg:"" optional:"" help:"Output file (.wav, .aif, .aiff)." default:"${output}"`
	Frequency float64 `help:"Tone frequency in Hz." default:"${frequency}"`
	Amplitude float32 `help:"Peak amplitude, 0 to 1." default:"${amplitude}"`
	Rate      int     `help:"Sample rate in Hz." default:"${rate}"`
	Channels  int     `help:"Channel count." default:"${channels}"`
	Seconds   float64 `help:"Length of the tone." default:"${duration}"`
	BitDepth  int     `help:"PCM bits per sample: 16, 24 or 32." default:"${bitdepth}"`
}

func (c *WriteCmd) Run(*Globals) error {
	w, err := audiofile.Create(c.Output, c.Rate, c.Channels, audiofile.WithBitDepth(c.BitDepth))
	if err != nil {
		return err
	}
	defer w.Close()

	osc := tone.NewSine(c.Frequency, c.Amplitude, c.Rate, c.Channels)
	buf := make([]float32, config.FrameSize*c.Channels)

	for left := int(c.Seconds * float64(c.Rate)); left > 0; {
		n := min(left, config.FrameSize)
		osc.Fill(buf, n)
		if err := w.WriteSamples(buf[:n*c.Channels]); err != nil {
			return err
		}
		left -= n
	}

	if err := w.Close(); err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("wrote %d frames to %s", w.FramesWritten(), c.Output))
	return nil
}

type ConvertCmd struct {
	Input    string `arg:"" type:"existingfile" help:"Source audio file."`
	Output   string `arg:"" help:"Destination file (.wav, .aif, .aiff)."`
	Rate     int    `help:"Target sample rate; 0 keeps the source rate." default:"0"`
	Channels int    `help:"Target channel count; 0 keeps the source count." default:"0"`
	Quality  string `help:"Resampler quality." enum:"cubic,low,medium,high,veryhigh" default:"${quality}"`
	BitDepth int    `help:"PCM bits per sample: 16, 24 or 32." default:"${bitdepth}"`
}

func (c *ConvertCmd) Run(*Globals) error {
	q, err := audio.ParseQuality(c.Quality)
	if err != nil {
		return err
	}

	frames, err := audios.Convert(c.Input, c.Output, c.Rate,
		audiofile.WithChannels(c.Channels),
		audiofile.WithQuality(q),
		audiofile.WithBitDepth(c.BitDepth),
	)
	if err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("converted %s to %s (%d frames)", c.Input, c.Output, frames))
	return nil
}

type InfoCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Audio files to inspect."`
}

func (c *InfoCmd) Run(*Globals) error {
	for _, path := range c.Paths {
		info, err := audiofile.Probe(path)
		if err != nil {
			return err
		}

		cli.PrintTitle(info.Path)
		cli.PrintInfo("Container", info.Container)
		cli.PrintInfo("Format", info.Format.String())
		cli.PrintInfo("Frames", fmt.Sprint(info.Frames))
		cli.PrintInfo("Duration", info.Duration.String())
	}
	return nil
}
