package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjl-/splitter"
	"github.com/mjl-/splitter/drawui"
	"github.com/mjl-/splitter/internal/logging"
)

func newDrawCmd(opts *options) *cobra.Command {
	var dim string
	cmd := &cobra.Command{
		Use:   "draw [title ...]",
		Short: "Show the panes in a devdraw window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := splitterConfig(opts, splitter.DefaultConfig())
			if err != nil {
				return err
			}
			ctx, closeLog, err := commandContext(cmd, opts, os.Stderr, "splitdemo")
			if err != nil {
				return err
			}
			defer closeLog()
			log := logging.FromContext(ctx)

			log.Info().Stringer("axis", cfg.Axis).Str("dim", dim).Msg("opening window")
			ui, err := drawui.New("splitdemo", dim, cfg, titles(args), *log)
			if err != nil {
				return err
			}
			for {
				select {
				case e := <-ui.Inputs:
					ui.Input(e)
				case <-ui.Done:
					return nil
				}
			}
		},
	}
	cmd.Flags().StringVar(&dim, "dim", "800x600", "window size")
	return cmd
}
