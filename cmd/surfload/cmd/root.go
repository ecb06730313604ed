// Package cmd assembles the surfload command tree.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	internal "github.com/ZanzyTHEbar/surfapi-go/surf"
	"github.com/ZanzyTHEbar/surfapi-go/surf/config"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/catalog"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/index"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/info"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/load"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/scan"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/watch"
)

var opts = &options{}

type options struct {
	ConfigPath  string
	LibraryPath string
	LogLevel    string
}

// openLibrary loads the vendor library for subcommands. Nil means the
// native binding.
var openLibrary app.OpenLibraryFunc

var Command = &cobra.Command{
	Use:           internal.DefaultAppCMDShortCut,
	Short:         "Load and catalogue surface metrology files through SurfAPI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(app.WithEnv(cmd.Context(), env))
		return nil
	},
}

func init() {
	flags := Command.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "",
		"Path to a config file. Searches ./config.yaml and "+internal.DefaultConfigPath+" if empty.")
	flags.StringVar(&opts.LibraryPath, "library", "",
		"Path to the SurfAPI shared library. Overrides library.path.")
	flags.StringVar(&opts.LogLevel, "log-level", "",
		"Log level (debug, info, warn, error). Overrides log.level.")

	Command.AddCommand(
		load.Command,
		info.Command,
		scan.Command,
		index.Command,
		watch.Command,
		catalog.Command,
	)
}

func newEnv(cmd *cobra.Command) (*app.Env, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("library") {
		cfg.Library.Path = opts.LibraryPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &app.Env{
		Config:      cfg,
		Logger:      internal.NewLogger(cfg.Log.Level),
		OpenLibrary: openLibrary,
	}, nil
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrPartial):
		return 2
	default:
		return 1
	}
}
