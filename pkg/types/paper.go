// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the arxiv-tools module:
// the Paper metadata record, the result envelopes returned by every tool
// operation, and the configuration structs.
package types

// Paper is an immutable snapshot of one arXiv paper's metadata. It is built
// per call from the API response and discarded once the envelope is returned.
type Paper struct {
	// Title is the paper title as returned by the API.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// PublishedDate is the publication date formatted as YYYY-MM-DD.
	PublishedDate string `json:"published_date" yaml:"published_date"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// ArxivID is the trailing path segment of the API entry identifier
	// (e.g. "2303.10130v2").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// PrimaryCategory is the primary subject classification (e.g. "cs.CL").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`

	// PDFLink is the URL of the paper's PDF.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`
}
