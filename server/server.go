// Package server exposes the live snapshot over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kotaroooo0/ristorante"
)

const (
	ModeConjunctive = "conjunctive"
	ModeRanked      = "ranked"
	ModeComposite   = "composite"
)

// Reloader produces the snapshot that replaces the live one on POST /reload.
type Reloader func() (*ristorante.Snapshot, error)

type Server struct {
	holder       *ristorante.SnapshotHolder
	normalizer   ristorante.Normalizer
	scorer       ristorante.Scorer
	reload       Reloader
	defaultLimit int
	maxLimit     int
	metrics      *Metrics
	logger       *zap.Logger
}

type Option func(*Server)

func WithReloader(r Reloader) Option {
	return func(s *Server) {
		s.reload = r
	}
}

func WithScorer(scorer ristorante.Scorer) Option {
	return func(s *Server) {
		s.scorer = scorer
	}
}

func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Server) {
		s.defaultLimit = defaultLimit
		s.maxLimit = maxLimit
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

func New(holder *ristorante.SnapshotHolder, normalizer ristorante.Normalizer, options ...Option) *Server {
	s := &Server{
		holder:       holder,
		normalizer:   normalizer,
		scorer:       ristorante.NewScorer(ristorante.DefaultScoreWeights()),
		defaultLimit: ristorante.DefaultLimit,
		maxLimit:     100,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if snapshot := holder.Load(); snapshot != nil {
		s.metrics.SnapshotDocuments.Set(float64(snapshot.Documents.Len()))
	}
	return s
}

// Router builds the gin engine serving every route.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(s.logger, s.metrics))

	router.GET("/health", s.HealthHandler)
	router.GET("/search", s.SearchHandler)
	router.GET("/documents/:id", s.GetDocumentHandler)
	router.GET("/terms/:term", s.GetTermHandler)
	router.POST("/reload", s.ReloadHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	return router
}

func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"documents": s.holder.Load().Documents.Len(),
	})
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Mode    string      `json:"mode"`
	Terms   []string    `json:"terms"`
	Total   int         `json:"total"`
	Results interface{} `json:"results"`
}

// SearchHandler serves GET /search?q=&mode=&k=. mode defaults to ranked; k is
// ignored by conjunctive search.
func (s *Server) SearchHandler(c *gin.Context) {
	q := c.Query("q")
	mode := c.DefaultQuery("mode", ModeRanked)
	k := s.defaultLimit
	if raw, ok := c.GetQuery("k"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, fmt.Sprintf("k must be an integer, got %q", raw))
			return
		}
		k = n
	}
	if k > s.maxLimit {
		sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, fmt.Sprintf("k must be at most %d", s.maxLimit))
		return
	}

	snapshot := s.holder.Load()
	logger := s.logger.With(zap.String("request_id", c.GetString(requestIDKey)))
	opt := ristorante.WithSearcherLogger(logger)

	var (
		results interface{}
		total   int
		terms   []string
		err     error
	)
	switch mode {
	case ModeConjunctive:
		query := ristorante.NewConjunctiveQuery(q, s.normalizer)
		terms = query.Terms()
		var docs []ristorante.Document
		docs, err = query.Searcher(snapshot, opt).Search()
		results, total = docs, len(docs)
	case ModeRanked:
		query := ristorante.NewRankedQuery(q, k, s.normalizer)
		terms = query.Terms()
		var docs []ristorante.ScoredDocument
		docs, err = query.Searcher(snapshot, opt).Search()
		results, total = docs, len(docs)
	case ModeComposite:
		query := ristorante.NewCompositeQuery(q, k, s.normalizer, s.scorer)
		terms = query.Terms()
		var docs []ristorante.ScoredDocument
		docs, err = query.Searcher(snapshot, opt).Search()
		results, total = docs, len(docs)
	default:
		sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, fmt.Sprintf("unknown mode %q", mode))
		return
	}
	s.metrics.observeSearch(mode, total, err)

	if errors.Is(err, ristorante.ErrInvalidLimit) {
		sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
		return
	}
	if err != nil {
		logger.Error("search failed", zap.String("mode", mode), zap.Error(err))
		sendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "search failed")
		return
	}
	c.JSON(http.StatusOK, SearchResponse{
		Query:   q,
		Mode:    mode,
		Terms:   terms,
		Total:   total,
		Results: results,
	})
}

func (s *Server) GetDocumentHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, fmt.Sprintf("invalid document id %q", c.Param("id")))
		return
	}
	doc, err := s.holder.Load().Documents.Get(ristorante.DocumentID(id))
	if errors.Is(err, ristorante.ErrDocumentNotFound) {
		sendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound, err.Error())
		return
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetTermHandler normalizes :term and reports its vocabulary entry.
func (s *Server) GetTermHandler(c *gin.Context) {
	terms := s.normalizer.Terms(c.Param("term"))
	if len(terms) != 1 {
		sendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, fmt.Sprintf("%q does not normalize to a single term", c.Param("term")))
		return
	}
	info, err := s.holder.Load().Term(terms[0])
	if errors.Is(err, ristorante.ErrTermNotFound) {
		sendError(c, http.StatusNotFound, ErrorCodeTermNotFound, err.Error())
		return
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, info)
}

// ReloadHandler builds a new snapshot and swaps it in. Queries already running
// keep the snapshot they started with.
func (s *Server) ReloadHandler(c *gin.Context) {
	if s.reload == nil {
		sendError(c, http.StatusNotImplemented, ErrorCodeReloadDisabled, "reload is not configured")
		return
	}
	snapshot, err := s.reload()
	if err != nil {
		s.metrics.SnapshotReloads.WithLabelValues("error").Inc()
		s.logger.Error("reload failed", zap.Error(err))
		sendError(c, http.StatusInternalServerError, ErrorCodeReloadFailed, err.Error())
		return
	}
	previous := s.holder.Swap(snapshot)
	s.metrics.SnapshotReloads.WithLabelValues("ok").Inc()
	s.metrics.SnapshotDocuments.Set(float64(snapshot.Documents.Len()))
	s.logger.Info("snapshot reloaded",
		zap.Int("documents", snapshot.Documents.Len()),
		zap.Int("previous_documents", previous.Documents.Len()))
	c.JSON(http.StatusOK, gin.H{"documents": snapshot.Documents.Len()})
}
