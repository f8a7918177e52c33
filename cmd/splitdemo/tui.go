package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mjl-/splitter"
	"github.com/mjl-/splitter/internal/logging"
	"github.com/mjl-/splitter/tui"
)

// terminalConfig is the default for the terminal, where sizes are cells.
func terminalConfig() splitter.Config {
	cfg := splitter.DefaultConfig()
	cfg.MinSize = 5
	cfg.SashThickness = splitter.Vec{1, 1}
	return cfg
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [title ...]",
		Short: "Show the panes in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := splitterConfig(opts, terminalConfig())
			if err != nil {
				return err
			}
			// The terminal belongs to bubbletea, only log to a file.
			ctx, closeLog, err := commandContext(cmd, opts, io.Discard, "splitdemo")
			if err != nil {
				return err
			}
			defer closeLog()
			log := logging.FromContext(ctx)

			var panes []*tui.Pane
			for i, t := range titles(args) {
				panes = append(panes, tui.NewPane(t, 1, fmt.Sprintf("pane %d", i+1), "drag a sash, or tab and arrow keys", "q to quit"))
			}
			log.Info().Stringer("axis", cfg.Axis).Int("panes", len(panes)).Msg("starting terminal ui")
			m := tui.New(cfg, panes, *log)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}
}
