// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic...]",
	Short: "Search arXiv for a topic and cache the results",
	Long: `Search queries arXiv for papers on a topic, ranked by relevance, and
merges their metadata into papers/<topic>/papers_info.json. The topic folder
is the lowercased topic with spaces replaced by underscores.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		if maxResults == 0 {
			maxResults = a.cfg.Search.MaxResults
		}
		format, _ := cmd.Flags().GetString("format")

		res, err := a.directory.SearchPapers(cmd.Context(), strings.Join(args, " "), maxResults)
		if err != nil {
			return err
		}
		return writeStructured(cmd.OutOrStdout(), format, res)
	},
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results, 1-20 (default from config, 5)")
	searchCmd.Flags().String("format", formatJSON, "output format: json or yaml")

	rootCmd.AddCommand(searchCmd)
}
