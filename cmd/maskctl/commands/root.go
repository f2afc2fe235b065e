package commands

import "github.com/spf13/cobra"

// NewRootCommand собирает дерево команд maskctl
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "maskctl",
		Short:         "Format, unmask and total values the way the store admin does",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(formatCmd(), unmaskCmd(), applyCmd(), totalsCmd(), masksCmd())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
