package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/editor"
	"github.com/MrSnakeDoc/bonk/internal/query"
	"github.com/MrSnakeDoc/bonk/internal/render"
)

func newEditCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id-prefix>",
		Short: "Edit an entry in an external editor",
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
				fmt.Fprintln(a.Stdout, "no records found to edit.")
				return nil
			}

			// A failed or aborted edit leaves the collection untouched; the
			// write only happens after the edited entry validates.
			ed := editor.New(a.Cfg.Editor)
			if err := ed.EditEntry(&entries[idx], a.NowUnix()); err != nil {
				return err
			}

			if err := a.Store.WriteAll(entries); err != nil {
				return err
			}

			fmt.Fprintf(a.Stdout, "updated entry %s\n", render.ShortID(&entries[idx]))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
	return cmd
}
