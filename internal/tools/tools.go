// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the three arXiv tool operations consumed by agent
// frameworks: search, summarize, and answer. Each operation returns exactly
// one result envelope; every failure, local or upstream, is converted to an
// error envelope at the operation boundary and never escapes as an error.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-tools/internal/arxiv"
	"github.com/pdiddy/arxiv-tools/internal/relevance"
	"github.com/pdiddy/arxiv-tools/pkg/types"
)

// maxSearchResults caps the number of papers a search returns.
const maxSearchResults = 5

// Client is the arXiv API surface the operations consume. *arxiv.Client
// satisfies it; tests use doubles.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]arxiv.Entry, error)
	Lookup(ctx context.Context, id string) (*arxiv.Entry, error)
}

// Tools bundles the three operations around a shared client. Operations are
// stateless and re-entrant; nothing is shared across calls.
type Tools struct {
	Client Client
}

// New returns a Tools instance backed by client.
func New(client Client) *Tools {
	return &Tools{Client: client}
}

// SearchPapers searches arXiv for papers matching the free-text query and
// returns up to five results ranked by relevance.
func (t *Tools) SearchPapers(ctx context.Context, query string) types.SearchEnvelope {
	entries, err := t.Client.Search(ctx, query, maxSearchResults)
	if err != nil {
		return types.SearchEnvelope{Status: types.StatusError, Message: err.Error()}
	}

	papers := make([]types.Paper, 0, len(entries))
	for _, e := range entries {
		papers = append(papers, toPaper(e))
	}

	if len(papers) == 0 {
		return types.SearchEnvelope{
			Status:  types.StatusSuccess,
			Papers:  papers,
			Message: "No papers found matching your query.",
		}
	}
	return types.SearchEnvelope{Status: types.StatusSuccess, Papers: papers}
}

// SummarizePaper fetches the metadata of a single paper given an arXiv ID or
// URL. A malformed identifier short-circuits before any network call.
func (t *Tools) SummarizePaper(ctx context.Context, idOrURL string) types.PaperEnvelope {
	id := arxiv.ExtractID(idOrURL)
	if id == "" {
		return types.PaperEnvelope{Status: types.StatusError, Message: "Invalid arXiv ID or URL format."}
	}

	entry, err := t.Client.Lookup(ctx, id)
	if err != nil {
		return types.PaperEnvelope{Status: types.StatusError, Message: err.Error()}
	}
	if entry == nil {
		return types.PaperEnvelope{Status: types.StatusError, Message: "Paper not found or invalid ID."}
	}

	paper := toPaper(*entry)
	return types.PaperEnvelope{Status: types.StatusSuccess, Paper: &paper}
}

// AnswerQuestion fetches a paper and classifies whether its abstract is
// likely to answer the question, using keyword overlap. The caller performs
// no further interpretation: the envelope carries the verdict, its message,
// the abstract, and the title.
func (t *Tools) AnswerQuestion(ctx context.Context, idOrURL, question string) types.AnswerEnvelope {
	id := arxiv.ExtractID(idOrURL)
	if id == "" {
		return types.AnswerEnvelope{Status: types.StatusError, Message: "Invalid arXiv ID or URL format."}
	}

	entry, err := t.Client.Lookup(ctx, id)
	if err != nil {
		return types.AnswerEnvelope{Status: types.StatusError, Message: fmt.Sprintf("An error occurred: %v", err)}
	}
	if entry == nil {
		return types.AnswerEnvelope{
			Status:  types.StatusError,
			Message: fmt.Sprintf("Paper with ID '%s' not found.", id),
		}
	}

	result := relevance.Classify(question, entry.Summary)
	return types.AnswerEnvelope{
		Status:     types.StatusSuccess,
		AnswerType: result.Type,
		Message:    result.Message,
		Abstract:   entry.Summary,
		Title:      entry.Title,
	}
}

// toPaper maps an API entry to the Paper record returned in envelopes.
func toPaper(e arxiv.Entry) types.Paper {
	p := types.Paper{
		Title:           e.Title,
		Authors:         e.Authors,
		Summary:         e.Summary,
		ArxivID:         entrySlug(e.ID),
		PrimaryCategory: e.PrimaryCategory,
		PDFLink:         e.PDFURL,
	}
	if !e.Published.IsZero() {
		p.PublishedDate = e.Published.Format("2006-01-02")
	}
	return p
}

// entrySlug returns the trailing path segment of the entry identifier URL
// (e.g. "http://arxiv.org/abs/2303.10130v2" yields "2303.10130v2"). The
// segment is taken as-is, version suffix included.
func entrySlug(entryID string) string {
	if i := strings.LastIndex(entryID, "/"); i >= 0 {
		return entryID[i+1:]
	}
	return entryID
}
