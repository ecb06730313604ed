package scan

var opts = &options{}

type options struct {
	Extensions []string
	Flat       bool
}

func init() {
	flags := Command.Flags()
	flags.StringSliceVar(&opts.Extensions, "ext", nil,
		"File extensions to match, e.g. --ext .sur,.sdf. Uses scan.extensions if empty.")
	flags.BoolVar(&opts.Flat, "flat", false,
		"Do not descend into subdirectories.")
}
