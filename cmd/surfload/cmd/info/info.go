package info

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/surfapi-go/surf/loader"

	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/app"
	"github.com/ZanzyTHEbar/surfapi-go/cmd/surfload/cmd/presenter"
)

var Command = &cobra.Command{
	Use:   "info <file>",
	Short: "Print the object headers of a file without reading points",
	Long: `This command reads only the object headers of a file, which is
much faster than a full load for large surfaces.

Usage examples:

	surfload info bone.sur

`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args[0])
	},
}

func runCommand(cmd *cobra.Command, path string) error {
	env, err := app.Require(cmd.Context())
	if err != nil {
		return err
	}
	lib, release, err := env.Library()
	if err != nil {
		return err
	}
	defer release()

	infos, err := loader.NewSurfaceLoader(lib, path, loader.WithLogger(env.Logger)).Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := range infos {
		m, err := infos[i].Metadata()
		if err != nil {
			env.Logger.Warn().Int("object", i+1).Err(err).Msg("header could not be decoded")
			fmt.Fprintf(out, "object %d: %v\n", i+1, err)
			continue
		}
		presenter.Metadata(out, i+1, m)
	}
	return nil
}
