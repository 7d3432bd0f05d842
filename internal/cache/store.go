// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists paper metadata as one JSON file per topic.
// The layout is <root>/<normalized topic>/papers_info.json. The Store is
// the only writer of these files; there is no locking and the last writer
// wins.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// FileName is the name of the cache file inside each topic directory.
const FileName = "papers_info.json"

// ErrNotFound is returned when no topic cache holds an identifier.
var ErrNotFound = errors.New("paper not found in local cache")

// ErrInvalidTopic is returned for topics that do not map to a folder
// directly under the root.
var ErrInvalidTopic = errors.New("invalid topic")

var topicReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// Store reads and writes topic caches under a root directory.
type Store struct {
	root   string
	logger *zap.Logger
}

// NewStore returns a Store rooted at root. The directory is created lazily
// on the first Save.
func NewStore(root string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{root: root, logger: logger}
}

// Root returns the storage root.
func (s *Store) Root() string { return s.root }

// Normalize turns a topic into its folder name: lowercased, with spaces
// and path separators replaced by underscores.
func Normalize(topic string) string {
	return topicReplacer.Replace(strings.ToLower(topic))
}

// ValidateTopic reports whether topic normalizes to a single folder name
// under the root.
func ValidateTopic(topic string) error {
	switch name := Normalize(strings.TrimSpace(topic)); name {
	case "", ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return nil
}

// TopicPath returns the cache file path for topic.
func (s *Store) TopicPath(topic string) string {
	return filepath.Join(s.root, Normalize(topic), FileName)
}

// Load reads the cache at path. A missing, unreadable or malformed file
// yields an empty cache; Load never fails.
func (s *Store) Load(path string) types.TopicCache {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("unreadable cache file", zap.String("path", path), zap.Error(err))
		}
		return types.TopicCache{}
	}

	var tc types.TopicCache
	if err := json.Unmarshal(data, &tc); err != nil {
		s.logger.Debug("malformed cache file", zap.String("path", path), zap.Error(err))
		return types.TopicCache{}
	}
	if tc == nil {
		return types.TopicCache{}
	}
	for id, p := range tc {
		p.ID = id
		tc[id] = p
	}
	return tc
}

// Save writes cache to path as JSON with two-space indentation, creating
// parent directories as needed. The file is overwritten in place.
func (s *Store) Save(path string, cache types.TopicCache) error {
	if cache == nil {
		cache = types.TopicCache{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FindByIdentifier scans every topic directory under the root and returns
// the first record keyed by id. Directories without a readable cache file
// are skipped. It returns ErrNotFound when no cache holds id.
func (s *Store) FindByIdentifier(id string) (types.PaperRecord, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Debug("cache root unreadable", zap.String("root", s.root), zap.Error(err))
		return types.PaperRecord{}, ErrNotFound
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.root, entry.Name(), FileName)
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}
		if p, ok := s.Load(path)[id]; ok {
			return p, nil
		}
	}
	return types.PaperRecord{}, ErrNotFound
}

// Topics lists the topic folders that hold a cache file.
func (s *Store) Topics() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache root %s: %w", s.root, err)
	}

	var topics []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, entry.Name(), FileName)); err == nil {
			topics = append(topics, entry.Name())
		}
	}
	return topics, nil
}
