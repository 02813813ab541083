// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance classifies whether a paper abstract is likely relevant
// to a question, using keyword overlap after stop-word removal. This is a
// lexical heuristic, not semantic question answering: tokens match as
// substrings anywhere in the abstract, so "cat" matches "category".
package relevance

import (
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-tools/pkg/types"
)

// tokenSplit separates a question into tokens on runs of non-word characters.
var tokenSplit = regexp.MustCompile(`\W+`)

// Result pairs a classification with its human-readable message.
type Result struct {
	Type    types.AnswerType
	Message string
}

const (
	msgNotEnoughKeywords = "Your question did not contain enough significant keywords after removing common words. Please try a more specific question."
	msgFoundInAbstract   = "The abstract may contain information relevant to your question. Please review it."
	msgNotFound          = "I could not find specific information for your question in the paper's abstract."
)

// Keywords lower-cases and tokenizes the question, dropping empty tokens and
// stop words. The returned slice preserves question order and duplicates.
func Keywords(question string) []string {
	var words []string
	for _, w := range tokenSplit.Split(strings.ToLower(question), -1) {
		if w == "" || stopWords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Classify scores the abstract against the question's significant keywords.
// More than half of the keywords must occur in the lower-cased abstract for
// a found_in_abstract verdict; the threshold uses real-number division.
func Classify(question, abstract string) Result {
	words := Keywords(question)
	if len(words) == 0 {
		return Result{Type: types.AnswerNotEnoughKeywords, Message: msgNotEnoughKeywords}
	}

	abstractLower := strings.ToLower(abstract)
	found := 0
	for _, w := range words {
		if strings.Contains(abstractLower, w) {
			found++
		}
	}

	if float64(found) > float64(len(words))/2 {
		return Result{Type: types.AnswerFoundInAbstract, Message: msgFoundInAbstract}
	}
	return Result{Type: types.AnswerNotFoundInAbstract, Message: msgNotFound}
}
