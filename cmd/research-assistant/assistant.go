// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var assistantCmd = &cobra.Command{
	Use:   "assistant [question...]",
	Short: "Ask the research assistant a question",
	Long: `Assistant sends the question to Gemini with hate speech and harassment
filters set to the configured thresholds and prints {"response": ...} or
{"error": ...}. A rate-limited call waits for the cooldown and reports it;
it is not retried.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		resp := a.assistant.Ask(cmd.Context(), strings.Join(args, " "))
		return writeStructured(cmd.OutOrStdout(), format, resp)
	},
}

func init() {
	assistantCmd.Flags().String("format", formatJSON, "output format: json or yaml")

	rootCmd.AddCommand(assistantCmd)
}
