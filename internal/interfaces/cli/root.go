// Package cli assembles the studyhall command tree.
package cli

import (
	"github.com/spf13/cobra"

	"studyhall/internal/interfaces/cli/migrate"
	"studyhall/internal/interfaces/cli/server"
)

// NewRootCommand returns the root studyhall command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "studyhall",
		Short: "StudyHall API server and tools",
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	return root
}
