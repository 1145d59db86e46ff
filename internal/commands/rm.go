package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/query"
	"github.com/MrSnakeDoc/bonk/internal/render"
)

func newRmCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id-prefix>",
		Short: "Delete an entry by ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			idx, entry, err := query.FindByIDPrefix(entries, args[0])
			if err != nil {
				return err
			}
			if entry == nil {
				// Not a failure; nothing is written.
				fmt.Fprintln(a.Stdout, "no records found to delete.")
				return nil
			}

			fmt.Fprintf(a.Stdout, "deleted entry %s\n", render.ShortID(entry))
			fmt.Fprintln(a.Stdout, render.ShortView(entry, true))

			entries = append(entries[:idx], entries[idx+1:]...)
			return a.Store.WriteAll(entries)
		},
	}
	return cmd
}
