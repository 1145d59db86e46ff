// Package commands defines the bonk command tree. Every command follows the
// same shape: load the full collection, run it through the query engine,
// mutate zero or more entries, write the full collection back. There is no
// partial update path.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/version"
)

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bonk",
		Short:         "bonk is a personal bookmark store",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newLsCmd(a))
	rootCmd.AddCommand(newRandCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newRmCmd(a))
	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newMarkCmd(a))
	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newSyncCmd(a))

	return rootCmd
}
