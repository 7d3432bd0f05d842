// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [input...]",
	Short: "Look up a paper ID or ask a research question",
	Long: `Ask takes one input. If it contains a digit it is treated as a paper ID:
the local cache is searched first, then arXiv. If neither has the paper, or
the input has no digits, it is sent to the research assistant as a question.`,
	Example: `  research-assistant ask 2401.12345v1
  research-assistant ask what is retrieval augmented generation`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		reply := a.router.Submit(cmd.Context(), strings.Join(args, " "))
		return writeReply(cmd.OutOrStdout(), format, reply)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read inputs line by line and answer each one",
	Long: `Repl starts an interactive session. Each line is handled like "ask".
Blank lines are ignored; "exit" or "quit" ends the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Ask a research question or enter a paper ID (e.g., 2401.12345). Type exit to quit.")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			switch line {
			case "":
				continue
			case "exit", "quit":
				return nil
			}
			if err := writeReply(out, format, a.router.Submit(cmd.Context(), line)); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
	},
}

func init() {
	askCmd.Flags().String("format", formatText, "output format: text, json or yaml")
	replCmd.Flags().String("format", formatText, "output format: text, json or yaml")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(replCmd)
}
