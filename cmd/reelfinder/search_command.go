package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelfinder/internal/prefilter"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var showDropped bool

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Collect and prefilter candidates without classifying them",
		Long: "Runs only the collection and lexical prefilter stages, useful for tuning " +
			"queries before spending classification calls. With no arguments the " +
			"configured query set is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			coll, err := ctx.buildCollector(cfg, logger)
			if err != nil {
				return err
			}

			queries := args
			if len(queries) == 0 {
				queries = cfg.Search.Queries
			}

			collected, err := coll.Collect(cmd.Context(), queries)
			if err != nil {
				return err
			}
			kept, dropped := prefilter.Filter(collected)

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"collected": len(collected),
					"kept":      kept,
					"dropped":   dropped,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Collected %d candidates, %d passed the prefilter\n", len(collected), len(kept))

			headers := []string{"Title", "Duration", "Views", "Author"}
			rows := make([][]string, 0, len(kept))
			for _, cand := range kept {
				rows = append(rows, []string{
					cand.Title,
					cand.FormatDuration(),
					strconv.FormatInt(cand.ViewCount(), 10),
					cand.Author,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}))

			if showDropped && len(dropped) > 0 {
				fmt.Fprintf(out, "\nDropped %d candidates:\n", len(dropped))
				for _, d := range dropped {
					fmt.Fprintf(out, "  %q (matched %q)\n", d.Candidate.Title, d.Keyword)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&showDropped, "show-dropped", false, "List prefilter rejections with the matched keyword")
	return cmd
}
