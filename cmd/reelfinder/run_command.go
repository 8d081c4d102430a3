package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelfinder/internal/candidate"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var limit int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full curation pipeline and export results",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.buildPipeline()
			if err != nil {
				return err
			}
			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s\n", result.RunID)
			fmt.Fprintf(out, "Collected %d, prefiltered %d, classified %d, verified %d, final %d\n",
				result.Collected, result.Prefiltered, result.Classified, result.Verified, result.Final)

			if result.Final == 0 {
				fmt.Fprintln(out, "No verified classic movies found.")
				return nil
			}

			shown := result.Ranked
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			fmt.Fprintln(out, renderResultsTable(shown))
			fmt.Fprintf(out, "CSV:  %s\n", result.Export.CSV)
			fmt.Fprintf(out, "JSON: %s\n", result.Export.JSON)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run result as JSON")
	cmd.Flags().IntVar(&limit, "limit", 20, "Rows to show in the summary table (0 for all)")
	return cmd
}

func renderResultsTable(candidates []candidate.Candidate) string {
	headers := []string{"#", "Title", "Year", "Score", "Verified", "Duration", "Views"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignRight, alignRight}

	rows := make([][]string, 0, len(candidates))
	for i, cand := range candidates {
		year := ""
		if cand.Verification != nil && cand.Verification.ReleaseYear != nil {
			year = strconv.Itoa(*cand.Verification.ReleaseYear)
		} else if cand.Era != nil && cand.Era.ProductionYear != nil {
			year = strconv.Itoa(*cand.Era.ProductionYear)
		}
		score := ""
		if cand.FinalScore != nil {
			score = strconv.FormatFloat(*cand.FinalScore, 'f', 1, 64)
		}
		verified := "no"
		if cand.Verification != nil && cand.Verification.Verified {
			verified = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cand.Title,
			year,
			score,
			verified,
			cand.FormatDuration(),
			strconv.FormatInt(cand.ViewCount(), 10),
		})
	}
	return renderTable(headers, rows, aligns)
}
