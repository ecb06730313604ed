package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/presenter"
)

var Command = &cobra.Command{
	Use:   "catalog [prefix]",
	Short: "List catalog entries, optionally under a path prefix",
	Long: `This command lists what index and watch have recorded.

Usage examples:

1. Everything:

	surfload catalog

2. Files under one directory:

	surfload catalog /data/scans/2024/

3. Forget a file:

	surfload catalog --delete /data/scans/old.sur

`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}
		store, err := env.Catalog()
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if opts.Delete != "" {
			path, err := filepath.Abs(opts.Delete)
			if err != nil {
				return err
			}
			n, err := store.Delete(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d entries removed\n", n)
			return nil
		}

		if len(args) == 1 {
			presenter.Entries(out, store.ByPrefix(args[0]))
			return nil
		}
		entries, err := store.List()
		if err != nil {
			return err
		}
		presenter.Entries(out, entries)
		return nil
	},
}
