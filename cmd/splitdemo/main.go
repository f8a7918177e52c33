// Command splitdemo shows panes in a splitter, in the terminal or in a
// devdraw window. Drag the sashes to resize the panes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mjl-/splitter"
	"github.com/mjl-/splitter/internal/logging"
)

type options struct {
	config    string
	axis      string
	logLevel  string
	logFormat string
	logFile   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "splitdemo",
		Short:        "Show resizable panes separated by draggable sashes",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "TOML file with splitter settings")
	flags.StringVarP(&opts.axis, "axis", "a", "", "horizontal or vertical, overrides the config file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn, error or off")
	flags.StringVar(&opts.logFormat, "log-format", "console", "console or json")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newTUICmd(opts), newDrawCmd(opts))
	return root
}

// splitterConfig returns the config from opts, starting from defaults
// when no config file is given.
func splitterConfig(opts *options, defaults splitter.Config) (splitter.Config, error) {
	cfg := defaults
	if opts.config != "" {
		var err error
		cfg, err = splitter.LoadConfig(opts.config)
		if err != nil {
			return cfg, err
		}
	}
	if opts.axis != "" {
		if err := cfg.Axis.UnmarshalText([]byte(opts.axis)); err != nil {
			return cfg, fmt.Errorf("flag --axis: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

// logger returns the logger from opts, writing to w unless a log file
// was given. The returned close function must be called when done.
func logger(opts *options, w io.Writer) (zerolog.Logger, func(), error) {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if opts.logFormat != "console" && opts.logFormat != "json" {
		return zerolog.Nop(), nil, fmt.Errorf("unknown log format %q", opts.logFormat)
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = opts.logFormat

	closeFn := func() {}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			f.Close()
		}
	}
	return logging.New(cfg, w), closeFn, nil
}

// commandContext attaches the logger from opts to the command's context,
// tagged with component.
func commandContext(cmd *cobra.Command, opts *options, w io.Writer, component string) (context.Context, func(), error) {
	log, closeLog, err := logger(opts, w)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithComponent(logging.WithContext(ctx, log), component)
	return ctx, closeLog, nil
}

func titles(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{"one", "two", "three"}
}
