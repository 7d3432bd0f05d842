// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs topic searches against the paper provider, persists
// the results into the topic cache, and fetches single papers directly.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/internal/cache"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// MaxResultsLimit bounds the number of results a single search may request.
const MaxResultsLimit = 20

// ErrNotFound is returned when the provider has no paper for an identifier.
var ErrNotFound = errors.New("paper not found")

// ErrInvalidInput marks search arguments rejected before the provider is
// called.
var ErrInvalidInput = errors.New("invalid search input")

// Entry is one paper as returned by a Provider.
type Entry struct {
	ShortID   string
	Title     string
	Authors   []string
	Summary   string
	PDFURL    string
	Published time.Time
}

// Record converts the entry into a cache record.
func (e Entry) Record() types.PaperRecord {
	published := ""
	if !e.Published.IsZero() {
		published = e.Published.Format("2006-01-02")
	}
	authors := e.Authors
	if authors == nil {
		authors = []string{}
	}
	return types.PaperRecord{
		ID:        e.ShortID,
		Title:     e.Title,
		Authors:   authors,
		Summary:   e.Summary,
		PDFURL:    e.PDFURL,
		Published: published,
		AbsURL:    types.AbsURL(e.PDFURL),
	}
}

// Provider is the external paper-search service. ArxivProvider is the
// production implementation; tests supply fakes.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Entry, error)
	Fetch(ctx context.Context, id string) (Entry, error)
}

// Service is the paper directory: it searches the provider and owns the
// write path into the topic cache.
type Service struct {
	provider Provider
	store    *cache.Store
	logger   *zap.Logger
}

// NewService wires a provider to a cache store.
func NewService(provider Provider, store *cache.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, store: store, logger: logger}
}

// SearchPapers queries the provider for up to maxResults papers on topic,
// merges them into the topic's cache file and returns their identifiers in
// relevance order. Provider failures abort the call before anything is
// written. Invalid arguments are reported as ErrInvalidInput.
func (s *Service) SearchPapers(ctx context.Context, topic string, maxResults int) (types.SearchResult, error) {
	if strings.TrimSpace(topic) == "" {
		return types.SearchResult{}, fmt.Errorf("%w: topic is empty", ErrInvalidInput)
	}
	if err := cache.ValidateTopic(topic); err != nil {
		return types.SearchResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if maxResults < 1 || maxResults > MaxResultsLimit {
		return types.SearchResult{}, fmt.Errorf("%w: max results must be between 1 and %d, got %d", ErrInvalidInput, MaxResultsLimit, maxResults)
	}

	entries, err := s.provider.Search(ctx, topic, maxResults)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("searching %q: %w", topic, err)
	}
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}

	path := s.store.TopicPath(topic)
	papers := s.store.Load(path)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ShortID)
		papers[e.ShortID] = e.Record()
	}

	if err := s.store.Save(path, papers); err != nil {
		return types.SearchResult{}, fmt.Errorf("saving results for %q: %w", topic, err)
	}

	s.logger.Info("search complete",
		zap.String("topic", topic),
		zap.Int("found", len(ids)),
		zap.String("path", path))

	return types.SearchResult{
		PaperIDs: ids,
		SavePath: path,
		Message:  fmt.Sprintf("Found %d papers on '%s'", len(ids), topic),
	}, nil
}

// FetchPaperDirect retrieves one paper from the provider. Only the first
// whitespace-delimited token of input is used as the identifier. Every
// failure is reported as a descriptive error; the cache is not touched.
func (s *Service) FetchPaperDirect(ctx context.Context, input string) (types.PaperRecord, error) {
	id := FirstToken(input)
	if id == "" {
		return types.PaperRecord{}, fmt.Errorf("failed to retrieve paper %s: empty identifier", input)
	}

	entry, err := s.provider.Fetch(ctx, id)
	if err != nil {
		s.logger.Debug("direct fetch failed", zap.String("id", id), zap.Error(err))
		return types.PaperRecord{}, fmt.Errorf("failed to retrieve paper %s: %w", input, err)
	}
	return entry.Record(), nil
}

// FirstToken returns the first whitespace-delimited token of s.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
