package handlers

import (
	"net/http"

	"github.com/ndewijer/CryptoShield-Backend/internal/api/request"
	"github.com/ndewijer/CryptoShield-Backend/internal/api/response"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
)

// AllocationHandler exposes the allocation calculator over JSON.
type AllocationHandler struct {
	allocationService *service.AllocationService
}

// NewAllocationHandler creates a new AllocationHandler
func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// Allocation handles POST requests computing the allocation for an investor profile.
// Omitted riskTolerance and goal fall back to the defaults; capital is required.
//
// Endpoint: POST /api/allocation
// Request body: request.AllocationRequest
// Response: 200 OK with AllocationResponse
// Errors:
//   - 400 Bad Request for an unreadable body or invalid profile (field map in details)
//   - 422 Unprocessable Entity when the recommendation catalog is degenerate
//   - 500 Internal Server Error when the recommendation source fails
func (h *AllocationHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AllocationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Capital == nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", map[string]string{
			"capital": "capital is required",
		})
		return
	}

	analysis, err := h.allocationService.Analyze(r.Context(), req.ToProfile(h.allocationService.DefaultProfile()))
	if err != nil {
		respondServiceError(w, "failed to compute allocation", err)
		return
	}

	respondJSON(w, http.StatusOK, newAllocationResponse(analysis))
}

// ProfileOptions handles GET requests for the accepted profile values.
//
// Endpoint: GET /api/profile/options
// Response: 200 OK with ProfileOptionsResponse
func (h *AllocationHandler) ProfileOptions(w http.ResponseWriter, _ *http.Request) {
	opts := h.allocationService.ProfileOptions()

	risks := make([]ProfileOptionResponse, len(opts.RiskTolerances))
	for i, rt := range opts.RiskTolerances {
		risks[i] = ProfileOptionResponse{Value: string(rt), Label: rt.Label()}
	}
	goals := make([]ProfileOptionResponse, len(opts.Goals))
	for i, g := range opts.Goals {
		goals[i] = ProfileOptionResponse{Value: string(g), Label: g.Label()}
	}

	respondJSON(w, http.StatusOK, ProfileOptionsResponse{
		RiskTolerances: risks,
		Goals:          goals,
		CapitalMin:     opts.CapitalMin,
		CapitalMax:     opts.CapitalMax,
		CapitalDefault: opts.CapitalDefault,
		CapitalStep:    opts.CapitalStep,
		Default:        opts.Default,
	})
}
