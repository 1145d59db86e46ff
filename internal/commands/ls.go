package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/query"
	"github.com/MrSnakeDoc/bonk/internal/render"
)

func newLsCmd(a *app.App) *cobra.Command {
	var read, favorite, showID bool
	var tags []string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List saved entries grouped by tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			filtered := query.FilterByMarks(entries, read, favorite)
			filtered = query.FilterByTags(filtered, tags)

			fmt.Fprintf(a.Stdout, "bonk showing %d of %d entries.\n\n", len(filtered), len(entries))

			groups := query.GroupByTag(filtered)
			for _, tag := range query.SortedKeys(groups) {
				group := groups[tag]
				fmt.Fprintln(a.Stdout, render.GroupHeader(tag, len(group)))
				for i := range group {
					fmt.Fprintln(a.Stdout, render.ShortView(&group[i], showID))
				}
				fmt.Fprintln(a.Stdout)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&read, "read", "r", false, "show read entries instead of unread ones")
	cmd.Flags().BoolVarP(&favorite, "favorite", "f", false, "show only favorites")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "show only entries with one of these tags (\"untagged\" matches entries without tags)")
	cmd.Flags().BoolVar(&showID, "id", false, "show entry IDs")

	return cmd
}
