package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelfinder/internal/candidate"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var year int
	var durationMinutes int

	cmd := &cobra.Command{
		Use:   "verify <title>",
		Short: "Cross-reference one title against TMDB",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			verifier, err := ctx.buildVerifier(cfg, logger)
			if err != nil {
				return err
			}

			cand := candidate.Candidate{
				Title:    strings.Join(args, " "),
				Duration: durationMinutes * 60,
			}
			if year > 0 {
				cand.Era = &candidate.EraVerdict{ProductionYear: &year}
			}

			record := verifier.Verify(cmd.Context(), cand)
			if jsonOutput {
				return writeJSON(cmd, record)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:      %s\n", cand.Title)
			fmt.Fprintf(out, "Verified:   %s\n", yesNo(record.Verified))
			fmt.Fprintf(out, "Confidence: %.0f\n", record.Confidence)
			if record.TMDBID != nil {
				fmt.Fprintf(out, "TMDB:       %s (#%d)\n", record.TMDBTitle, *record.TMDBID)
			}
			if record.ReleaseYear != nil {
				fmt.Fprintf(out, "Released:   %s\n", strconv.Itoa(*record.ReleaseYear))
			}
			if len(record.Studios) > 0 {
				fmt.Fprintf(out, "Studios:    %s\n", strings.Join(record.Studios, ", "))
			}
			fmt.Fprintf(out, "Reason:     %s\n", record.MatchReason)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the verification record as JSON")
	cmd.Flags().IntVar(&year, "year", 0, "Release year hint for the database search")
	cmd.Flags().IntVar(&durationMinutes, "duration", 0, "Video duration in minutes, for runtime matching")
	return cmd
}
