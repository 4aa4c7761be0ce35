package cmd

// Cmd is a single subcommand. Run receives the arguments after the
// subcommand name.
type Cmd interface {
	Name() string
	Usage() string
	Run(args []string) error
}
