package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/services"
)

// QueryHandler handles structured provider queries
type QueryHandler struct {
	queryService *services.ProviderQueryService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService *services.ProviderQueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// Query handles POST /api/query. The body is a structured query: criteria,
// and optionally an aggregation, grouping, sort keys, and a limit. Malformed
// criteria come back as 400 with the rejection reason.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var query entities.Query
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&query); err != nil {
		respondWithError(w, http.StatusBadRequest, "request body is not a valid query: "+err.Error())
		return
	}

	result, err := h.queryService.Query(r.Context(), query)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// ReloadSnapshot handles POST /api/snapshot/reload, refreshing the
// in-memory dataset after an import.
func (h *QueryHandler) ReloadSnapshot(w http.ResponseWriter, r *http.Request) {
	size, err := h.queryService.ReloadSnapshot(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{
		"providers": size,
	})
}
