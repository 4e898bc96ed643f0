package handlers

import (
	"net/http"
	"strconv"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/services"
)

// ProviderHandler handles provider-related HTTP requests
type ProviderHandler struct {
	queryService *services.ProviderQueryService
	searchRepo   repositories.ProviderSearchRepository
}

// NewProviderHandler creates a new provider handler. searchRepo may be
// nil when no search index is configured.
func NewProviderHandler(queryService *services.ProviderQueryService, searchRepo repositories.ProviderSearchRepository) *ProviderHandler {
	return &ProviderHandler{
		queryService: queryService,
		searchRepo:   searchRepo,
	}
}

// GetProvider handles GET /api/providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "provider ID must be an integer")
		return
	}

	provider, err := h.queryService.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, provider)
}

// ListProviders handles GET /api/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.ProviderFilter{
		State:     q.Get("state"),
		City:      q.Get("city"),
		Specialty: q.Get("specialty"),
		Language:  q.Get("language"),
		Insurance: q.Get("insurance"),
		Name:      q.Get("name"),
		Limit:     30,
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	providers, err := h.queryService.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"providers": providers,
		"count":     len(providers),
	})
}

// SearchProviders handles GET /api/providers/search
func (h *ProviderHandler) SearchProviders(w http.ResponseWriter, r *http.Request) {
	if h.searchRepo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "name search is not configured")
		return
	}

	name := r.URL.Query().Get("q")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	providers, err := h.searchRepo.SearchByName(r.Context(), name, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"providers": providers,
		"count":     len(providers),
	})
}

// GetVocabulary handles GET /api/vocabulary
func (h *ProviderHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	vocab, err := h.queryService.GetVocabulary(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vocab)
}
