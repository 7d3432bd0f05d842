// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [id] [ignored...]",
	Short: "Fetch one paper's metadata directly from arXiv",
	Long: `Fetch retrieves a single paper from arXiv without consulting or updating
the cache. Only the first word of the input is used as the ID. Failures are
printed as {"error": ...}.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		p, err := a.directory.FetchPaperDirect(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return writeStructured(cmd.OutOrStdout(), format, types.PaperDetail{Error: err.Error()})
		}
		return writeStructured(cmd.OutOrStdout(), format, types.NewPaperDetail(p))
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [id]",
	Short: "Find a paper in the local cache",
	Long: `Lookup scans every cached topic for the paper ID and prints the first
match keyed by its ID. It never contacts arXiv.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		p, err := a.lookup.ExtractInfo(args[0])
		if err != nil {
			return writeStructured(cmd.OutOrStdout(), format, types.PaperDetail{Error: err.Error()})
		}
		return writeStructured(cmd.OutOrStdout(), format, types.TopicCache{p.ID: p})
	},
}

func init() {
	fetchCmd.Flags().String("format", formatJSON, "output format: json or yaml")
	lookupCmd.Flags().String("format", formatJSON, "output format: json or yaml")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(lookupCmd)
}
