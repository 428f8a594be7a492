// Package gin exposes the sitebrief pipeline over HTTP using gin.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/sitebrief"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = ":8080"

// ShutdownTimeout bounds graceful shutdown after the context is canceled.
const ShutdownTimeout = 10 * time.Second

// Server serves the summarize endpoint and the summary history.
type Server struct {
	briefer   sitebrief.Briefer
	summaries sitebrief.SummaryService
	logger    *slog.Logger
	rateLimit float64
	rateBurst int
	router    *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithSummaryService enables the /summaries history routes.
func WithSummaryService(summaries sitebrief.SummaryService) Option {
	return func(s *Server) {
		s.summaries = summaries
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit limits POST /summarize to rps requests per second across
// all clients, allowing bursts of burst requests. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rateLimit = rps
		s.rateBurst = burst
	}
}

// NewServer creates a Server that answers summarize requests with briefer.
func NewServer(briefer sitebrief.Briefer, opts ...Option) *Server {
	s := &Server{
		briefer: briefer,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = gin.New()
	s.router.Use(gin.Recovery(), requestLogger(s.logger))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)

	summarize := []gin.HandlerFunc{s.handleSummarize}
	if s.rateLimit > 0 {
		summarize = append([]gin.HandlerFunc{rateLimit(s.rateLimit, s.rateBurst)}, summarize...)
	}
	s.router.POST("/summarize", summarize...)

	if s.summaries != nil {
		s.router.GET("/summaries", s.handleListSummaries)
		s.router.GET("/summaries/:id", s.handleGetSummary)
	}

	return s
}

// Handler returns the HTTP handler for the server's routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// statusCode maps application error codes to HTTP status codes.
func statusCode(code string) int {
	switch code {
	case sitebrief.EINVALID:
		return http.StatusBadRequest
	case sitebrief.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as {"error": message} with a matching status.
func writeError(c *gin.Context, err error) {
	c.JSON(statusCode(sitebrief.ErrorCode(err)), gin.H{"error": sitebrief.ErrorMessage(err)})
}
