package catalog

var opts = &options{}

type options struct {
	Delete string
}

func init() {
	Command.Flags().StringVar(&opts.Delete, "delete", "",
		"Remove every entry recorded for this file path instead of listing.")
}
