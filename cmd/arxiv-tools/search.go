// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search arXiv for papers matching a free-text query",
	Long: `Search queries the arXiv API for papers matching a free-text query and
prints a result envelope with up to five papers ranked by relevance. A query
with no matches yields a success envelope with an empty papers array.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newTools().SearchPapers(cmd.Context(), strings.Join(args, " "))
		return emitEnvelope(cmd, out)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
