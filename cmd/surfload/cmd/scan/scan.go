package scan

import (
	"github.com/spf13/cobra"

	surfscan "github.com/ZanzyTHEbar/surfapi-go/surf/scan"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/presenter"
)

var Command = &cobra.Command{
	Use:   "scan <dir>",
	Short: "List the metrology files under a directory",
	Long: `This command lists the files a later index run would load. Files
matched by the ignore file (scan.ignoreFile, gitignore syntax) in the
directory are left out.

Usage examples:

	surfload scan /data/scans
	surfload scan --flat --ext .sur /data/scans

`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}
		paths, err := surfscan.Find(args[0], scanOptions(env))
		if err != nil {
			return err
		}
		presenter.Paths(cmd.OutOrStdout(), paths)
		return nil
	},
}

// scanOptions merges the command flags over the configured scan settings.
func scanOptions(env *app.Env) surfscan.Options {
	o := env.ScanOptions()
	if len(opts.Extensions) > 0 {
		o.Extensions = opts.Extensions
	}
	if opts.Flat {
		o.Recursive = false
	}
	return o
}
