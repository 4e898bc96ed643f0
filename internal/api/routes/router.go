package routes

import (
	"net/http"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/api/handlers"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/api/middleware"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	providerHandler *handlers.ProviderHandler
	queryHandler    *handlers.QueryHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	providerHandler *handlers.ProviderHandler,
	queryHandler *handlers.QueryHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		providerHandler: providerHandler,
		queryHandler:    queryHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Provider endpoints
	r.mux.HandleFunc("GET /api/providers", r.providerHandler.ListProviders)
	r.mux.HandleFunc("GET /api/providers/search", r.providerHandler.SearchProviders)
	r.mux.HandleFunc("GET /api/providers/{id}", r.providerHandler.GetProvider)

	// Vocabulary endpoint
	r.mux.HandleFunc("GET /api/vocabulary", r.providerHandler.GetVocabulary)

	// Structured query endpoints
	r.mux.HandleFunc("POST /api/query", r.queryHandler.Query)
	r.mux.HandleFunc("POST /api/snapshot/reload", r.queryHandler.ReloadSnapshot)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
