// Package server exposes the dashboard controls and charts over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/render"
)

// Options configures the HTTP surface.
type Options struct {
	CORSOrigins     []string
	RateLimit       float64 // requests per second; 0 disables limiting
	RateBurst       int
	Render          render.Options
	CacheMaxEntries int
	CacheTTL        time.Duration
}

// Server serves a single immutable dataset.
type Server struct {
	ds      *dataset.Dataset
	opts    Options
	cache   *ChartCache
	limiter *rate.Limiter
}

// New creates a Server for ds.
func New(ds *dataset.Dataset, opts Options) *Server {
	s := &Server{
		ds:    ds,
		opts:  opts,
		cache: NewChartCache(opts.CacheMaxEntries, opts.CacheTTL),
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = int(opts.RateLimit) + 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return s
}

// Cache returns the rendered chart cache.
func (s *Server) Cache() *ChartCache { return s.cache }

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))

		r.Get("/controls", s.handleControls)
		r.Get("/sites", s.handleSites)
		r.Get("/cache", s.handleCacheStats)

		r.Get("/charts/pie", s.handlePie)
		r.Get("/charts/pie.png", s.handlePiePNG)
		r.Get("/charts/scatter", s.handleScatter)
		r.Get("/charts/scatter.png", s.handleScatterPNG)
	})

	return r
}
