// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for research-assistant.
// PaperRecord and TopicCache are the on-disk cache model; SearchResult,
// PaperDetail, AssistantResponse and Reply are transient results rendered
// by the CLI and the HTTP API.
package types

import "strings"

// PaperRecord holds the cached metadata for one paper.
type PaperRecord struct {
	// ID is the provider-assigned short identifier (e.g. "2401.12345v1").
	// It is the map key in a TopicCache and is not repeated in the file.
	ID string `json:"-" yaml:"id,omitempty"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// PDFURL links to the PDF rendition.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// Published is the first publication date in YYYY-MM-DD form.
	Published string `json:"published" yaml:"published"`

	// AbsURL links to the abstract page. See AbsURL.
	AbsURL string `json:"abs_url" yaml:"abs_url"`
}

// AbsURL derives the abstract page URL by replacing every "pdf" in the
// PDF URL with "abs". URLs without the literal substring are returned as-is.
func AbsURL(pdfURL string) string {
	return strings.ReplaceAll(pdfURL, "pdf", "abs")
}

// TopicCache maps paper identifiers to their records for one topic.
type TopicCache map[string]PaperRecord

// PaperDetail is the direct-fetch view of a paper. It names the summary
// "abstract" and carries Error instead of data on failure.
type PaperDetail struct {
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract  string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	PDFURL    string   `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	AbsURL    string   `json:"abs_url,omitempty" yaml:"abs_url,omitempty"`
	Authors   []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Published string   `json:"published,omitempty" yaml:"published,omitempty"`

	// Error records the failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewPaperDetail converts a record to its direct-fetch view.
func NewPaperDetail(p PaperRecord) PaperDetail {
	return PaperDetail{
		Title:     p.Title,
		Abstract:  p.Summary,
		PDFURL:    p.PDFURL,
		AbsURL:    p.AbsURL,
		Authors:   p.Authors,
		Published: p.Published,
	}
}
