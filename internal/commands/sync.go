package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/domain"
	"github.com/MrSnakeDoc/bonk/internal/logger"
	"github.com/MrSnakeDoc/bonk/internal/pocket"
)

func newSyncCmd(a *app.App) *cobra.Command {
	var acceptAll bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch new entries from Pocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := pocket.LoadCredentials(a.Store.CredentialsPath())
			if err != nil {
				return err
			}

			watermark, err := a.Store.ReadSyncWatermark()
			if err != nil {
				return err
			}

			// The next watermark is the batch start, not the max remote
			// timestamp; a lagging remote clock must not hide records from
			// the next sync.
			start := a.NowUnix()

			client := pocket.NewClient(a.Cfg.PocketURL, a.Cfg.PocketTimeout)
			raws, err := client.Fetch(cmd.Context(), creds, watermark)
			if err != nil {
				return err
			}

			candidates, err := pocket.Candidates(raws, watermark)
			if err != nil {
				return err
			}
			a.Log.Debug("pocket fetch complete",
				logger.Int("records", len(raws)),
				logger.Int("candidates", len(candidates)))

			if len(candidates) == 0 {
				fmt.Fprintln(a.Stdout, "nothing new.")
				return a.Store.WriteSyncWatermark(start)
			}

			accepted, err := confirmCandidates(a, candidates, acceptAll)
			if err != nil {
				return err
			}

			if len(accepted) > 0 {
				entries, err := a.Store.ReadAll()
				if err != nil {
					return err
				}
				entries = append(entries, accepted...)
				if err := a.Store.WriteAll(entries); err != nil {
					return err
				}
			}

			fmt.Fprintf(a.Stdout, "saved %d of %d new entries.\n", len(accepted), len(candidates))
			return a.Store.WriteSyncWatermark(start)
		},
	}

	cmd.Flags().BoolVarP(&acceptAll, "yes", "y", false, "save every new entry without prompting")

	return cmd
}

// confirmCandidates walks the user through each candidate: keep or skip,
// tags, and initial read/favorite marks. With acceptAll the policy is
// non-interactive: keep everything, untagged and unmarked.
func confirmCandidates(a *app.App, candidates []domain.Entry, acceptAll bool) ([]domain.Entry, error) {
	if acceptAll {
		return candidates, nil
	}

	prompt := newPrompter(a)
	accepted := make([]domain.Entry, 0, len(candidates))

	for _, candidate := range candidates {
		fmt.Fprintf(a.Stdout, "\nIncoming entry: %s (%s)\n", candidate.Title, candidate.URL)

		keep, err := prompt.Confirm("Do you want to save this entry?")
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}

		tags, err := prompt.Tags()
		if err != nil {
			return nil, err
		}
		candidate.Tags = tags

		if read, err := prompt.Confirm("Mark as read?"); err != nil {
			return nil, err
		} else if read {
			candidate.Marks = candidate.Marks.Set(domain.MarkRead)
		}
		if favorite, err := prompt.Confirm("Mark as favorite?"); err != nil {
			return nil, err
		} else if favorite {
			candidate.Marks = candidate.Marks.Set(domain.MarkFavorite)
		}

		candidate.UpdatedAt = a.NowUnix()
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		accepted = append(accepted, candidate)
	}

	return accepted, nil
}
