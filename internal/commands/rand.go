package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/query"
	"github.com/MrSnakeDoc/bonk/internal/render"
)

func newRandCmd(a *app.App) *cobra.Command {
	var read, favorite bool
	var num int

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Show a random sample of entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			filtered := query.FilterByMarks(entries, read, favorite)
			rng := rand.New(rand.NewSource(a.Now().UnixNano()))

			for _, e := range query.Sample(filtered, num, rng) {
				fmt.Fprintln(a.Stdout, render.LongView(&e))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&read, "read", "r", false, "sample from read entries instead of unread ones")
	cmd.Flags().BoolVarP(&favorite, "favorite", "f", false, "sample only favorites")
	cmd.Flags().IntVarP(&num, "num", "n", 3, "number of entries to sample")

	return cmd
}
