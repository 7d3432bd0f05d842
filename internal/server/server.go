// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the assistant over an HTTP JSON API. Each route
// mirrors one CLI command and returns the same result shapes.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/internal/cache"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Submitter routes a free-form input.
type Submitter interface {
	Submit(ctx context.Context, input string) types.Reply
}

// Directory searches and fetches papers from the provider.
type Directory interface {
	SearchPapers(ctx context.Context, topic string, maxResults int) (types.SearchResult, error)
	FetchPaperDirect(ctx context.Context, input string) (types.PaperRecord, error)
}

// LocalLookup reads the local cache.
type LocalLookup interface {
	ExtractInfo(id string) (types.PaperRecord, error)
}

// Asker answers free-text questions.
type Asker interface {
	Ask(ctx context.Context, query string) types.AssistantResponse
}

// TopicLister lists cached topics.
type TopicLister interface {
	Topics() ([]string, error)
}

// Deps holds the services behind the routes.
type Deps struct {
	Router            Submitter
	Directory         Directory
	Lookup            LocalLookup
	Assistant         Asker
	Topics            TopicLister
	DefaultMaxResults int
	Logger            *zap.Logger
}

// Handler serves the API routes.
type Handler struct {
	deps Deps
}

// NewHandler returns a Handler over deps.
func NewHandler(deps Deps) *Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.DefaultMaxResults <= 0 {
		deps.DefaultMaxResults = 5
	}
	return &Handler{deps: deps}
}

// NewEngine builds a gin engine with recovery, request logging and the API
// routes under /api.
func NewEngine(deps Deps) *gin.Engine {
	h := NewHandler(deps)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(h.deps.Logger))
	RegisterRoutes(engine.Group("/api"), h)
	return engine
}

// RegisterRoutes attaches the handlers to api.
func RegisterRoutes(api *gin.RouterGroup, h *Handler) {
	api.POST("/submit", h.Submit)
	api.POST("/search", h.Search)
	api.GET("/papers/fetch", h.Fetch)
	api.GET("/papers/lookup", h.Lookup)
	api.POST("/assistant", h.Ask)
	api.GET("/topics", h.ListTopics)
}

type submitRequest struct {
	Input string `json:"input"`
}

type searchRequest struct {
	Topic      string `json:"topic"`
	MaxResults int    `json:"max_results"`
}

type assistantRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit routes one input and returns a types.Reply.
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	c.JSON(http.StatusOK, h.deps.Router.Submit(c.Request.Context(), req.Input))
}

// Search runs a topic search and returns a types.SearchResult.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	if req.MaxResults == 0 {
		req.MaxResults = h.deps.DefaultMaxResults
	}

	res, err := h.deps.Directory.SearchPapers(c.Request.Context(), req.Topic, req.MaxResults)
	if errors.Is(err, search.ErrInvalidInput) {
		badRequest(c, err.Error())
		return
	}
	if err != nil {
		h.deps.Logger.Warn("search failed", zap.String("topic", req.Topic), zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Fetch retrieves a paper from the provider. Failures are reported in the
// body as {"error": ...} with status 200, like the CLI.
func (h *Handler) Fetch(c *gin.Context) {
	id := c.Query("id")
	if strings.TrimSpace(id) == "" {
		badRequest(c, "id is required")
		return
	}
	p, err := h.deps.Directory.FetchPaperDirect(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, types.PaperDetail{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.NewPaperDetail(p))
}

// Lookup reads a paper from the local cache only and returns it keyed by
// its identifier.
func (h *Handler) Lookup(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		badRequest(c, "id is required")
		return
	}
	p, err := h.deps.Lookup.ExtractInfo(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, cache.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.TopicCache{p.ID: p})
}

// Ask forwards a question to the assistant.
func (h *Handler) Ask(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	c.JSON(http.StatusOK, h.deps.Assistant.Ask(c.Request.Context(), req.Query))
}

// ListTopics returns the cached topic folder names.
func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.deps.Topics.Topics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if topics == nil {
		topics = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
