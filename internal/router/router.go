// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package router turns one submitted input into one reply.
//
// Input containing any decimal digit is treated as a paper identifier:
// the local cache is consulted first, then the provider. When both fail the
// input falls through to the assistant as a question, so the user never
// sees a bare lookup failure. Input without digits goes straight to the
// assistant.
package router

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// LocalLookup finds papers in the local cache.
type LocalLookup interface {
	ExtractInfo(id string) (types.PaperRecord, error)
}

// Directory fetches papers from the remote provider.
type Directory interface {
	FetchPaperDirect(ctx context.Context, input string) (types.PaperRecord, error)
}

// Asker answers free-text questions.
type Asker interface {
	Ask(ctx context.Context, query string) types.AssistantResponse
}

// Router sequences the lookup, fetch and assistant calls for one request.
// It holds no per-request state.
type Router struct {
	local     LocalLookup
	directory Directory
	assistant Asker
	logger    *zap.Logger
}

// New returns a Router over the given services.
func New(local LocalLookup, directory Directory, assistant Asker, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{local: local, directory: directory, assistant: assistant, logger: logger}
}

// LooksLikeIdentifier reports whether s contains at least one decimal digit.
// Digits inside an ordinary question ("explain GPT3 results") count too.
func LooksLikeIdentifier(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// Submit handles one input and returns its reply.
func (r *Router) Submit(ctx context.Context, input string) types.Reply {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Reply{Kind: types.ReplyAnswer, Answer: "empty input", Source: types.SourceAssistant}
	}

	if LooksLikeIdentifier(input) {
		if reply, ok := r.resolvePaper(ctx, input); ok {
			return reply
		}
		r.logger.Debug("identifier lookup failed, asking assistant", zap.String("input", input))
	}
	return r.ask(ctx, input)
}

// resolvePaper tries the local cache and then the provider. ok is false
// when both fail.
func (r *Router) resolvePaper(ctx context.Context, input string) (types.Reply, bool) {
	p, err := r.local.ExtractInfo(input)
	if err == nil {
		r.logger.Debug("resolved from cache", zap.String("input", input))
		return paperReply(p, types.SourceCache), true
	}
	r.logger.Debug("not in local cache", zap.String("input", input), zap.Error(err))

	p, err = r.directory.FetchPaperDirect(ctx, input)
	if err == nil {
		r.logger.Debug("resolved from provider", zap.String("input", input))
		return paperReply(p, types.SourceArxiv), true
	}
	r.logger.Debug("provider fetch failed", zap.String("input", input), zap.Error(err))
	return types.Reply{}, false
}

func (r *Router) ask(ctx context.Context, query string) types.Reply {
	resp := r.assistant.Ask(ctx, query)
	return types.Reply{
		Kind:   types.ReplyAnswer,
		Answer: resp.Text(),
		Source: types.SourceAssistant,
	}
}

func paperReply(p types.PaperRecord, source string) types.Reply {
	return types.Reply{
		Kind:    types.ReplyPaper,
		PaperID: p.ID,
		Paper:   &p,
		Source:  source,
	}
}
