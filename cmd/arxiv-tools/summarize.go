// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import "github.com/spf13/cobra"

var summarizeCmd = &cobra.Command{
	Use:   "summarize [id-or-url]",
	Short: "Fetch the metadata and abstract of a single paper",
	Long: `Summarize fetches one paper's metadata given an arXiv ID (e.g. "2303.10130",
"hep-th/0101001") or an arxiv.org URL, and prints it as a result envelope.
A malformed identifier produces an error envelope without contacting the API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newTools().SummarizePaper(cmd.Context(), args[0])
		return emitEnvelope(cmd, out)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
