// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func samplePaper(id string) types.PaperRecord {
	return types.PaperRecord{
		ID:        id,
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Summary:   "The dominant sequence transduction models...",
		PDFURL:    "http://arxiv.org/pdf/" + id,
		Published: "2017-06-12",
		AbsURL:    "http://arxiv.org/abs/" + id,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "papers"), zaptest.NewLogger(t))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Machine Learning", "machine_learning"},
		{"transformers", "transformers"},
		{"Large  Language Models", "large__language_models"},
		{"cs.AI/ML", "cs.ai_ml"},
		{`Graph\Networks`, "graph_networks"},
		{"../escaped", ".._escaped"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.topic))
		})
	}
}

func TestValidateTopic(t *testing.T) {
	for _, topic := range []string{"", "   ", ".", "..", " .. "} {
		assert.ErrorIs(t, ValidateTopic(topic), ErrInvalidTopic, "topic %q", topic)
	}
	for _, topic := range []string{"ml", "cs.AI/ML", "../escaped", "..."} {
		assert.NoError(t, ValidateTopic(topic), "topic %q", topic)
	}
}

func TestTopicPathStaysUnderRoot(t *testing.T) {
	s := newTestStore(t)
	for _, topic := range []string{"cs.AI/ML", "../escaped", `a\b`, "/abs/path"} {
		path := s.TopicPath(topic)
		assert.Equal(t, s.Root(), filepath.Dir(filepath.Dir(path)), "topic %q", topic)
	}
}

func TestTopicPath(t *testing.T) {
	s := NewStore("papers", nil)
	assert.Equal(t, filepath.Join("papers", "quantum_computing", FileName), s.TopicPath("Quantum Computing"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	path := s.TopicPath("attention")

	want := types.TopicCache{
		"1706.03762v7": samplePaper("1706.03762v7"),
		"2401.12345v1": samplePaper("2401.12345v1"),
	}
	require.NoError(t, s.Save(path, want))

	got := s.Load(path)
	assert.Equal(t, want, got)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	s := newTestStore(t)
	path := s.TopicPath("attention")
	require.NoError(t, s.Save(path, types.TopicCache{"1706.03762v7": samplePaper("1706.03762v7")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{\n  \"1706.03762v7\": {\n    \"title\"")
	assert.NotContains(t, string(data), "\"ID\"")
}

func TestLoadResilience(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"invalid json", strPtr("{not json")},
		{"json array", strPtr(`["a", "b"]`)},
		{"json null", strPtr("null")},
		{"empty file", strPtr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			path := s.TopicPath("broken")
			if tt.content != nil {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			got := s.Load(path)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFindByIdentifier(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(s.TopicPath("nlp"), types.TopicCache{"1706.03762v7": samplePaper("1706.03762v7")}))
	require.NoError(t, s.Save(s.TopicPath("vision"), types.TopicCache{"2010.11929v2": samplePaper("2010.11929v2")}))

	// A corrupt topic file must not stop the scan.
	corrupt := s.TopicPath("aaa corrupt")
	require.NoError(t, os.MkdirAll(filepath.Dir(corrupt), 0o755))
	require.NoError(t, os.WriteFile(corrupt, []byte("{{{"), 0o644))

	// Stray files and empty directories are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), "empty"), 0o755))

	got, err := s.FindByIdentifier("2010.11929v2")
	require.NoError(t, err)
	assert.Equal(t, samplePaper("2010.11929v2"), got)

	_, err = s.FindByIdentifier("9999.99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByIdentifier_MissingRoot(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindByIdentifier("1706.03762v7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopics(t *testing.T) {
	s := newTestStore(t)

	topics, err := s.Topics()
	require.NoError(t, err)
	assert.Empty(t, topics)

	require.NoError(t, s.Save(s.TopicPath("Graph Neural Networks"), types.TopicCache{}))
	require.NoError(t, s.Save(s.TopicPath("diffusion"), types.TopicCache{}))
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), "no_cache"), 0o755))

	topics, err = s.Topics()
	require.NoError(t, err)
	assert.Equal(t, []string{"diffusion", "graph_neural_networks"}, topics)
}

func strPtr(s string) *string { return &s }
