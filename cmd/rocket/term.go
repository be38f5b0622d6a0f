package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
	"github.com/vovakirdan/rocket/internal/platform/tui"
)

var (
	flagConfig string
	flagFPS    int
	flagLog    string
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play rocket in the terminal. The playfield is scaled to the terminal
size and the background is drawn as a starfield.

Controls:
  Mouse move     - Steer horizontally
  Mouse release  - Cycle color (red, green, blue)
  Ctrl+S         - Save a screenshot to ~/.rocket/screenshots
  Esc/Q/Ctrl+C   - Quit

Examples:
  rocket term
  rocket term --fps 30
  rocket term --config ./my-rocket.yaml --log rocket.log`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rocket config YAML")
	termCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	termCmd.Flags().StringVar(&flagLog, "log", "", "Write debug logs to this file")
}

func runTerm(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns stdout and stderr while playing
	var out io.Writer = io.Discard
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out, log.DebugLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	return tui.Run(tui.Open(cfg, rc, logger))
}
