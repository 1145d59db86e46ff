package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/query"
)

func newTagsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Summarize tag usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			counts, untagged := query.TagFrequency(entries)

			tags := make([]string, 0, len(counts))
			for tag := range counts {
				tags = append(tags, tag)
			}
			sort.Strings(tags)

			for _, tag := range tags {
				fmt.Fprintf(a.Stdout, "%4d  %s\n", counts[tag], tag)
			}
			if untagged > 0 {
				fmt.Fprintf(a.Stdout, "%4d  %s\n", untagged, query.UntaggedKey)
			}
			return nil
		},
	}
	return cmd
}
