package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/CryptoShield-Backend/internal/service"
)

// RecommendationHandler serves the recommendation catalog.
type RecommendationHandler struct {
	allocationService *service.AllocationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(allocationService *service.AllocationService) *RecommendationHandler {
	return &RecommendationHandler{
		allocationService: allocationService,
	}
}

// Recommendations handles GET requests to list the recommendation catalog in display order.
//
// Endpoint: GET /api/recommendation/
// Response: 200 OK with []RecommendationResponse
// Error: 500 Internal Server Error if the source fails
func (h *RecommendationHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.allocationService.Recommendations(r.Context())
	if err != nil {
		respondServiceError(w, "failed to retrieve recommendations", err)
		return
	}

	out := make([]RecommendationResponse, len(recs))
	for i, rec := range recs {
		out[i] = newRecommendationResponse(rec)
	}
	respondJSON(w, http.StatusOK, out)
}

// Recommendation handles GET requests for a single catalog entry.
// The uuid path parameter is validated by middleware.
//
// Endpoint: GET /api/recommendation/{uuid}
// Response: 200 OK with RecommendationResponse
// Error: 404 Not Found if no entry has the id, 500 if the source fails
func (h *RecommendationHandler) Recommendation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	rec, err := h.allocationService.Recommendation(r.Context(), id)
	if err != nil {
		respondServiceError(w, "failed to retrieve recommendation", err)
		return
	}

	respondJSON(w, http.StatusOK, newRecommendationResponse(rec))
}
