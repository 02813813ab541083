// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv export API and extracts arXiv identifiers
// from free-form input.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-tools/internal/httputil"
	"github.com/pdiddy/arxiv-tools/pkg/types"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Entry holds the fields of one Atom feed entry from the arXiv API.
type Entry struct {
	// ID is the full entry identifier URL (e.g.
	// "http://arxiv.org/abs/2303.10130v2").
	ID string

	// Title is the paper title.
	Title string

	// Summary is the paper abstract.
	Summary string

	// Published is the submission timestamp.
	Published time.Time

	// Authors lists the author names in feed order.
	Authors []string

	// PrimaryCategory is the primary subject classification term.
	PrimaryCategory string

	// PDFURL is the href of the entry's PDF link, if present.
	PDFURL string
}

// Client calls the arXiv export API.
type Client struct {
	HTTP   *http.Client
	Config types.ClientConfig
}

// NewClient returns a Client with an HTTP client configured from cfg.
func NewClient(cfg types.ClientConfig) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Search queries the API for papers matching the free-text query, sorted by
// relevance, and returns up to maxResults entries.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Entry, error) {
	q := buildQuery(query)
	if q == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=relevance&sortOrder=descending",
		apiBase, q, maxResults)

	feed, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entries = append(entries, e.toEntry())
	}
	return entries, nil
}

// Lookup queries the API for exactly one identifier and returns the matching
// entry, or nil when the identifier is unknown.
func (c *Client) Lookup(ctx context.Context, id string) (*Entry, error) {
	reqURL := fmt.Sprintf("%s?id_list=%s&max_results=1", apiBase, url.QueryEscape(id))

	feed, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if len(feed.Entries) == 0 {
		return nil, nil
	}

	// The API answers an unknown but well-formed ID with a placeholder
	// entry that has no identifier URL.
	e := feed.Entries[0].toEntry()
	if e.ID == "" {
		return nil, nil
	}
	return &e, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) (*atomFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &feed, nil
}

// buildQuery constructs the search_query parameter from free text.
func buildQuery(query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return ""
	}
	return "all:" + strings.Join(terms, "+")
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string       `xml:"id"`
	Title           string       `xml:"title"`
	Summary         string       `xml:"summary"`
	Published       string       `xml:"published"`
	Authors         []atomAuthor `xml:"author"`
	PrimaryCategory atomCategory `xml:"primary_category"`
	Links           []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

func (e atomEntry) toEntry() Entry {
	out := Entry{
		ID:              strings.TrimSpace(e.ID),
		Title:           strings.TrimSpace(e.Title),
		Summary:         strings.TrimSpace(e.Summary),
		PrimaryCategory: e.PrimaryCategory.Term,
		PDFURL:          pdfLink(e.Links),
	}

	for _, a := range e.Authors {
		out.Authors = append(out.Authors, strings.TrimSpace(a.Name))
	}

	if t, parseErr := time.Parse(time.RFC3339, e.Published); parseErr == nil {
		out.Published = t
	}
	return out
}

// pdfLink picks the PDF href from an entry's link elements. The feed marks
// it with title="pdf"; older entries only carry the MIME type.
func pdfLink(links []atomLink) string {
	for _, l := range links {
		if l.Title == "pdf" {
			return l.Href
		}
	}
	for _, l := range links {
		if l.Type == "application/pdf" {
			return l.Href
		}
	}
	return ""
}
