// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer [id-or-url] [question...]",
	Short: "Check whether a paper's abstract is relevant to a question",
	Long: `Answer fetches a paper and classifies whether its abstract is likely to
answer the question, by matching the question's significant keywords against
the abstract. The envelope carries the classification (not_enough_keywords,
found_in_abstract, or not_found_in_abstract), the abstract, and the title.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newTools().AnswerQuestion(cmd.Context(), args[0], strings.Join(args[1:], " "))
		return emitEnvelope(cmd, out)
	},
}

func init() {
	rootCmd.AddCommand(answerCmd)
}
