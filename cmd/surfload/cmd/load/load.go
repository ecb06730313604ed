package load

import (
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/surfapi-go/surf/batch"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/presenter"
)

var Command = &cobra.Command{
	Use:   "load <file>...",
	Short: "Load every object of one or more files",
	Long: `This command opens each file through SurfAPI, reads every object
(header, comment and points) and prints what it found.

Usage examples:

1. Load a single file:

	surfload load bone.sur

2. Load a directory's worth of files, four at a time:

	surfload load --workers 4 scans/*.sur

`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func runCommand(cmd *cobra.Command, paths []string) error {
	env, err := app.Require(cmd.Context())
	if err != nil {
		return err
	}
	lib, release, err := env.Library()
	if err != nil {
		return err
	}
	defer release()

	b := env.BatchLoader(lib)
	if opts.Workers > 0 {
		b.Workers = opts.Workers
	}
	results := b.LoadAll(cmd.Context(), paths)

	out := cmd.OutOrStdout()
	if !opts.Quiet {
		for _, r := range results {
			if r.Err == nil {
				presenter.Collections(out, r.Path, r.Collections)
			}
		}
	}
	presenter.Results(out, results)

	return app.BatchErr(batch.Summarize(results))
}
