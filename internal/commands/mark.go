package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/query"
	"github.com/MrSnakeDoc/bonk/internal/render"
)

func newMarkCmd(a *app.App) *cobra.Command {
	var read, unread, favorite, archive bool

	cmd := &cobra.Command{
		Use:   "mark <id-prefix>",
		Short: "Apply a mark transition to an entry",
		Long: `Apply exactly one mark transition to an entry.

Favorite and archive have no inverse transition; only read can be undone
with --unread.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := transitionName(read, unread, favorite, archive)
			if err != nil {
				return err
			}

			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			idx, entry, err := query.FindByIDPrefix(entries, args[0])
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Fprintln(a.Stdout, "no records found to mark.")
				return nil
			}

			if err := entries[idx].MarkWith(name, a.NowUnix()); err != nil {
				return err
			}

			if err := a.Store.WriteAll(entries); err != nil {
				return err
			}

			fmt.Fprintf(a.Stdout, "marked entry %s as %s\n", render.ShortID(&entries[idx]), name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&read, "read", "r", false, "mark as read")
	cmd.Flags().BoolVarP(&unread, "unread", "u", false, "mark as unread")
	cmd.Flags().BoolVarP(&favorite, "favorite", "f", false, "mark as favorite")
	cmd.Flags().BoolVarP(&archive, "archive", "a", false, "mark as archived")

	return cmd
}

// transitionName maps the flag set to the single requested transition.
func transitionName(read, unread, favorite, archive bool) (string, error) {
	var name string
	count := 0
	for flag, set := range map[string]bool{
		"read":     read,
		"unread":   unread,
		"favorite": favorite,
		"archive":  archive,
	} {
		if set {
			name = flag
			count++
		}
	}
	if count != 1 {
		return "", fmt.Errorf("exactly one of --read, --unread, --favorite, --archive is required")
	}
	return name, nil
}
