// rocket is a small arcade game: steer the square sideways and only pass
// through bars of your own color.
//
// Usage:
//
//	rocket         - Play in a window
//	rocket term    - Play in the terminal
//
// Controls:
//
//	mouse move     - Steer horizontally
//	mouse release  - Cycle color red, green, blue
//	Esc            - Quit
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/platform/window"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Rocket - dodge the bars that are not your color",
	Long: `Rocket opens a window with a scrolling starfield and a colored square.
Bars fall from the top; touching a bar of a different color ends the game.

Controls:
  Mouse move     - Steer horizontally
  Mouse release  - Cycle color (red, green, blue)
  Esc            - Quit

Examples:
  rocket
  rocket term --fps 30`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocket",
	})
	logger.SetLevel(level)
	return logger
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, log.InfoLevel)

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	host, err := window.Open(cfg, os.Stdout, logger)
	if err != nil {
		return err
	}
	return host.Run()
}
