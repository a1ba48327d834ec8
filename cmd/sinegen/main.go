// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ik5/audios/internal/cli"
	"github.com/ik5/audios/internal/config"
)

// version is set via ldflags at build time
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Verbose bool             `short:"v" help:"Log device lifecycle to stderr."`
	Version kong.VersionFlag `help:"Show version information."`
}

// Logger returns the player logger for these flags.
func (g *Globals) Logger() *log.Logger {
	if !g.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "sinegen: ", log.LstdFlags)
}

var CLI struct {
	Globals

	Play    PlayCmd    `cmd:"" help:"Play a sine tone on the default output device."`
	Write   WriteCmd   `cmd:"" help:"Write a sine tone to a WAV or AIFF file."`
	Loop    LoopCmd    `cmd:"" help:"Play an audio file, looping by default."`
	Convert ConvertCmd `cmd:"" help:"Convert an audio file to another rate, channel count or container."`
	Info    InfoCmd    `cmd:"" help:"Show the format of audio files."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sinegen"),
		kong.Description("Generate, play and convert test tones and audio files."),
		kong.UsageOnError(),
		kong.Vars{
			"version":   version,
			"rate":      fmt.Sprint(config.SampleRate),
			"channels":  fmt.Sprint(config.Channels),
			"framesize": fmt.Sprint(config.FrameSize),
			"frequency": fmt.Sprint(config.Frequency),
			"amplitude": fmt.Sprint(config.Amplitude),
			"duration":  fmt.Sprint(config.Duration),
			"bitdepth":  fmt.Sprint(config.BitDepth),
			"output":    config.OutputFile,
			"quality":   config.Quality,
		},
	)

	if err := ctx.Run(&CLI.Globals); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
