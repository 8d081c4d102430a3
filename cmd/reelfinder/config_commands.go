package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelfinder/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set llm api_key (or OPENROUTER_API_KEY) and tmdb api_key (or TMDB_API_KEY) before running.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load("")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Output dir:           %s\n", cfg.Paths.OutputDir)
			fmt.Fprintf(out, "Log dir:              %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "Queries:              %d\n", len(cfg.Search.Queries))
			fmt.Fprintf(out, "Results per query:    %d\n", cfg.Search.ResultsPerQuery)
			fmt.Fprintf(out, "Duration window:      %d-%d minutes\n", cfg.Search.MinDurationMinutes, cfg.Search.MaxDurationMinutes)
			fmt.Fprintf(out, "Vimeo token set:      %s\n", yesNo(strings.TrimSpace(cfg.Vimeo.AccessToken) != ""))
			fmt.Fprintf(out, "LLM model:            %s\n", cfg.LLM.Model)
			fmt.Fprintf(out, "Batch sizes:          %d/%d/%d\n", cfg.LLM.ContentBatchSize, cfg.LLM.NarrativeBatchSize, cfg.LLM.EraBatchSize)
			fmt.Fprintf(out, "TMDB min confidence:  %d\n", cfg.TMDB.MinConfidence)
			fmt.Fprintf(out, "Log format/level:     %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			return nil
		},
	}
}
