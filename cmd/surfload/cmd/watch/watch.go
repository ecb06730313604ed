package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/surfapi-go/surf/catalog"
	"github.com/ZanzyTHEbar/surfapi-go/surf/loader"
	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	surfwatch "github.com/ZanzyTHEbar/surfapi-go/surf/watch"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
)

var Command = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Record new files in the catalog as they are written",
	Long: `This command watches directories (and their subdirectories) and
loads each matching file once it has stopped changing for
watch.debounce, recording it in the catalog. It runs until interrupted.

Usage examples:

	surfload watch /data/incoming

`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args)
	},
}

func runCommand(cmd *cobra.Command, dirs []string) error {
	env, err := app.Require(cmd.Context())
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

	out := cmd.OutOrStdout()
	w, err := surfwatch.New(surfwatch.Config{
		Debounce:   env.Config.Watch.Debounce,
		MaxDelay:   env.Config.Watch.MaxDelay,
		Extensions: env.Config.Scan.Extensions,
	}, func(_ context.Context, path string) {
		n, err := record(lib, store, env, path)
		if err != nil {
			env.Logger.Error().Str("path", path).Err(err).Msg("failed to index file")
			return
		}
		fmt.Fprintf(out, "%s: %d entries\n", path, n)
	}, env.Logger)
	if err != nil {
		return err
	}
	defer w.Close()

	abs := make([]string, len(dirs))
	for i, d := range dirs {
		if abs[i], err = filepath.Abs(d); err != nil {
			return err
		}
	}
	if err := w.Start(cmd.Context(), abs); err != nil {
		return err
	}
	<-cmd.Context().Done()
	return nil
}

func record(lib native.Library, store *catalog.Store, env *app.Env, path string) (int, error) {
	collections, err := loader.NewStudiableLoader(lib, path, loader.WithLogger(env.Logger)).Load()
	if err != nil {
		return 0, err
	}
	entries, err := store.Record(path, collections)
	return len(entries), err
}
