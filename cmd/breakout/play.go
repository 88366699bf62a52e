package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the local terminal.

Controls:
  Left/A, Right/D  - Move paddle
  P/Space          - Pause
  R                - Restart
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default settings
  hard   - Faster ball and paddle, narrower paddle

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --sound --volume 0.3
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a blip on every collision")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("breakout")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	var sink audio.Sink = audio.NopSink{}
	if flagSound {
		speaker, sinkErr := audio.NewSpeakerSink(flagVolume)
		if sinkErr != nil {
			// Audio is optional, the game still works
			logger.Warn("sound disabled", "error", sinkErr)
		} else {
			sink = speaker
		}
	}
	defer sink.Close()

	if err := tui.Run(breakout.New(cfg), sink, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
