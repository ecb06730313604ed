package index

var opts = &options{}

type options struct {
	Workers int
}

func init() {
	Command.Flags().IntVar(&opts.Workers, "workers", 0,
		"Number of files loaded in parallel. Uses batch.workers if zero.")
}
