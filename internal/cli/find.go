package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func findCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search features and jobs by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			return withProject(opts, func(p *projectCtx) error {
				res, err := p.finder.FuzzyFind(query)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if res.Empty() {
					fmt.Fprintf(w, "(no matches for %q)\n", query)
					return nil
				}

				if len(res.Features) > 0 {
					fmt.Fprintln(w, styles.Title.Render("Features"))
					renderFeatures(w, res.Features)
				}
				if len(res.Jobs) > 0 {
					fmt.Fprintln(w, styles.Title.Render("Jobs"))
					renderJobs(w, res.Jobs)
				}
				return nil
			})
		},
	}
}
