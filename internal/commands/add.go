package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/domain"
	"github.com/MrSnakeDoc/bonk/internal/logger"
	"github.com/MrSnakeDoc/bonk/internal/render"
	"github.com/MrSnakeDoc/bonk/internal/sources/bookmarkfile"
)

func newAddCmd(a *app.App) *cobra.Command {
	var title, url, fromFile string
	var tags []string
	var read, favorite bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new entry, interactively or from a bookmarks file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile != "" {
				return addFromFile(a, fromFile)
			}

			prompt := newPrompter(a)
			var err error
			if title == "" {
				if title, err = prompt.Line("Title"); err != nil {
					return err
				}
			}
			if url == "" {
				if url, err = prompt.Line("URL"); err != nil {
					return err
				}
			}
			if len(tags) == 0 {
				if tags, err = prompt.Tags(); err != nil {
					return err
				}
			}

			var marks domain.Marks
			if read {
				marks = marks.Set(domain.MarkRead)
			}
			if favorite {
				marks = marks.Set(domain.MarkFavorite)
			}

			entry, err := domain.NewEntry(title, url, tags, marks, a.NowUnix())
			if err != nil {
				return err
			}

			entries, err := a.Store.ReadAll()
			if err != nil {
				return err
			}

			// Same URL means same ID; the store tolerates duplicates but the
			// user probably wants to know.
			for i := range entries {
				if entries[i].ID == entry.ID {
					a.Log.Warn("an entry with this URL already exists",
						logger.String("id", render.ShortID(entry)))
					break
				}
			}

			entries = append(entries, *entry)
			if err := a.Store.WriteAll(entries); err != nil {
				return err
			}

			fmt.Fprintf(a.Stdout, "added entry %s\n", render.ShortID(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "entry title (prompted when omitted)")
	cmd.Flags().StringVar(&url, "url", "", "entry URL (prompted when omitted)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tags for the entry")
	cmd.Flags().BoolVarP(&read, "read", "r", false, "mark the new entry as read")
	cmd.Flags().BoolVarP(&favorite, "favorite", "f", false, "mark the new entry as favorite")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "import entries from a Homepage-style bookmarks.yaml")

	return cmd
}

func addFromFile(a *app.App, path string) error {
	file, err := bookmarkfile.NewLoader(path).Load()
	if err != nil {
		return err
	}

	imported, err := bookmarkfile.NewMapper().Map(file, a.NowUnix())
	if err != nil {
		return err
	}

	entries, err := a.Store.ReadAll()
	if err != nil {
		return err
	}

	entries = append(entries, imported...)
	if err := a.Store.WriteAll(entries); err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "imported %d entries from %s\n", len(imported), path)
	return nil
}
