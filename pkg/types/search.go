// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchResult is the outcome of a topic search. PaperIDs keep the
// provider's relevance order.
type SearchResult struct {
	PaperIDs []string `json:"paper_ids" yaml:"paper_ids"`
	SavePath string   `json:"save_path" yaml:"save_path"`
	Message  string   `json:"message" yaml:"message"`
}

// AssistantResponse carries either generated text or an error message.
type AssistantResponse struct {
	Response string `json:"response,omitempty" yaml:"response,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Text returns the response, or the error message when there is none.
func (r AssistantResponse) Text() string {
	if r.Response != "" {
		return r.Response
	}
	if r.Error != "" {
		return r.Error
	}
	return "No response available"
}

// ReplyKind tells which path produced a Reply.
type ReplyKind string

const (
	ReplyPaper  ReplyKind = "paper"
	ReplyAnswer ReplyKind = "answer"
)

// Reply source values.
const (
	SourceCache     = "cache"
	SourceArxiv     = "arxiv"
	SourceAssistant = "assistant"
)

// Reply is the single visible result of one submitted input.
type Reply struct {
	Kind    ReplyKind    `json:"kind" yaml:"kind"`
	PaperID string       `json:"paper_id,omitempty" yaml:"paper_id,omitempty"`
	Paper   *PaperRecord `json:"paper,omitempty" yaml:"paper,omitempty"`
	Answer  string       `json:"answer,omitempty" yaml:"answer,omitempty"`
	Source  string       `json:"source" yaml:"source"`
}
