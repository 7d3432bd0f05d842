// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/research-assistant/internal/httputil"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivProvider queries the arXiv Atom API.
type ArxivProvider struct {
	Client    *http.Client
	UserAgent string
}

// Search returns up to maxResults entries for query, ranked by relevance.
func (p *ArxivProvider) Search(ctx context.Context, query string, maxResults int) ([]Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	return p.query(ctx, params)
}

// Fetch returns the entry for a single arXiv identifier. It returns
// ErrNotFound when arXiv has no such paper.
func (p *ArxivProvider) Fetch(ctx context.Context, id string) (Entry, error) {
	params := url.Values{}
	params.Set("id_list", id)
	params.Set("max_results", "1")

	entries, err := p.query(ctx, params)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entries[0], nil
}

func (p *ArxivProvider) query(ctx context.Context, params url.Values) ([]Entry, error) {
	resp, err := httputil.Get(ctx, p.Client, arxivAPIBase+"?"+params.Encode(), p.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		// arXiv reports bad input as a single entry under /api/errors.
		if strings.Contains(e.ID, "/api/errors") {
			return nil, fmt.Errorf("arXiv API error: %s", strings.TrimSpace(e.Summary))
		}
		entry := e.toEntry()
		if entry.ShortID == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
	Links     []arxivLink   `xml:"link"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
}

func (e arxivEntry) toEntry() Entry {
	entry := Entry{
		ShortID: shortID(e.ID),
		Title:   strings.Join(strings.Fields(e.Title), " "),
		Summary: strings.Join(strings.Fields(e.Summary), " "),
		PDFURL:  e.pdfURL(),
	}
	for _, a := range e.Authors {
		entry.Authors = append(entry.Authors, strings.TrimSpace(a.Name))
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
		entry.Published = t
	}
	return entry
}

// pdfURL returns the link titled "pdf", falling back to the abstract URL
// with /abs/ swapped for /pdf/.
func (e arxivEntry) pdfURL() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	id := strings.TrimSpace(e.ID)
	if strings.Contains(id, "/abs/") {
		return strings.Replace(id, "/abs/", "/pdf/", 1)
	}
	return ""
}

// shortID returns the part of the entry id after "arxiv.org/abs/",
// version included (e.g. "http://arxiv.org/abs/2401.12345v1" → "2401.12345v1").
func shortID(idURL string) string {
	const marker = "arxiv.org/abs/"
	idURL = strings.TrimSpace(idURL)
	idx := strings.Index(idURL, marker)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(marker):]
}
