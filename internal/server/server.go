// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the resolver and article fetch over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pdiddy/smart-summary/internal/journal"
	"github.com/pdiddy/smart-summary/pkg/types"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// Resolver turns a search term into a summary record.
type Resolver interface {
	Resolve(ctx context.Context, term, lang string) (*types.Summary, error)
}

// Articles fetches full article text.
type Articles interface {
	Article(ctx context.Context, lang, title string) (*types.Article, error)
}

// Journal records successful lookups.
type Journal interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Server holds the handlers' dependencies. Journal may be nil.
type Server struct {
	Resolver Resolver
	Articles Articles
	Journal  Journal
	Logger   *slog.Logger
}

// New returns a Server. A nil logger discards output.
func New(r Resolver, a Articles, j Journal, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{Resolver: r, Articles: a, Journal: j, Logger: logger}
}

// SetupRouter builds the gin engine with middleware and routes.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), s.accessLog(), gin.CustomRecovery(s.recovered))

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.GET("/search", s.Search)
	// Catch-all so titles containing "/" reach the handler intact.
	api.GET("/article/:lang/*title", s.Article)

	return r
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Search handles GET /api/search?q=&lang=.
func (s *Server) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing q"})
		return
	}
	lang := c.DefaultQuery("lang", types.DefaultLanguage)

	ctx := c.Request.Context()
	summary, err := s.Resolver.Resolve(ctx, q, lang)
	if err != nil {
		s.fail(c, "search failed", err, "term", q, "lang", lang)
		return
	}

	if s.Journal != nil {
		entry := journal.NewEntry(c.GetString(requestIDKey), q, summary)
		if err := s.Journal.Record(ctx, entry); err != nil {
			s.Logger.Warn("journal write failed", "error", err, requestIDKey, entry.RequestID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": summary})
}

// Article handles GET /api/article/:lang/*title.
func (s *Server) Article(c *gin.Context) {
	lang := c.Param("lang")
	title := strings.TrimPrefix(c.Param("title"), "/")

	article, err := s.Articles.Article(c.Request.Context(), lang, title)
	if err != nil {
		s.fail(c, "article failed", err, "title", title, "lang", lang)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "title": article.Title, "contentHtml": article.ContentHTML})
}

// fail writes the uniform 500 envelope. Not-found errors are not mapped to 404.
func (s *Server) fail(c *gin.Context, msg string, err error, args ...any) {
	args = append(args, "error", err, requestIDKey, c.GetString(requestIDKey))
	s.Logger.Error(msg, args...)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// recovered turns a handler panic into the same 500 envelope as an error.
func (s *Server) recovered(c *gin.Context, rec any) {
	s.Logger.Error("handler panic", "panic", fmt.Sprint(rec), "path", c.Request.URL.Path, requestIDKey, c.GetString(requestIDKey))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": fmt.Sprintf("internal error: %v", rec)})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			requestIDKey, c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
