// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List cached topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		topics, err := a.store.Topics()
		if err != nil {
			return err
		}
		if len(topics) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cached topics.")
			return nil
		}
		for _, t := range topics {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
