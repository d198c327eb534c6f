package main

import (
	"context"
	"io"
	"os"

	"emperror.dev/errors"
	"github.com/alimgiray/ghprofile/internal/tui"
	"github.com/alimgiray/ghprofile/pkg/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [username]",
	Short: "interactively search GitHub profiles",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return errors.New("tui command must be run in a terminal")
		}

		viewer, err := newViewer()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			viewer.SetInput(args[0])
		}

		// Log lines would tear the terminal UI apart.
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)

		model := tui.New(context.Background(), viewer, len(args) > 0)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return errors.Wrap(err, "terminal UI failed")
		}
		return nil
	},
}
