package load

var opts = &options{}

type options struct {
	Workers int
	Quiet   bool
}

func init() {
	flags := Command.Flags()
	flags.IntVar(&opts.Workers, "workers", 0,
		"Number of files loaded in parallel. Uses batch.workers if zero.")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Print only the per-file summary, not the object tables.")
}
