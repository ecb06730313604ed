package index

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/surfapi-go/surf/batch"
	"github.com/ZanzyTHEbar/surfapi-go/surf/scan"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/presenter"
)

var Command = &cobra.Command{
	Use:   "index <dir>",
	Short: "Load every file under a directory and record it in the catalog",
	Long: `This command scans a directory, loads the files it finds and
records one catalog entry per object. Re-indexing a file replaces its
previous entries.

Usage examples:

	surfload index /data/scans

`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args[0])
	},
}

func runCommand(cmd *cobra.Command, dir string) error {
	env, err := app.Require(cmd.Context())
	if err != nil {
		return err
	}
	paths, err := scan.Find(dir, env.ScanOptions())
	if err != nil {
		return err
	}

	lib, release, err := env.Library()
	if err != nil {
		return err
	}
	defer release()

	store, err := env.Catalog()
	if err != nil {
		return err
	}
	defer store.Close()

	b := env.BatchLoader(lib)
	if opts.Workers > 0 {
		b.Workers = opts.Workers
	}
	results := b.LoadAll(cmd.Context(), paths)

	recorded := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries, err := store.Record(r.Path, r.Collections)
		if err != nil {
			return fmt.Errorf("failed to record %s: %w", r.Path, err)
		}
		recorded += len(entries)
	}

	out := cmd.OutOrStdout()
	presenter.Results(out, results)
	fmt.Fprintf(out, "%d entries recorded\n", recorded)

	return app.BatchErr(batch.Summarize(results))
}
