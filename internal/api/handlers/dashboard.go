package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ndewijer/CryptoShield-Backend/internal/api/request"
	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/logging"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
	"github.com/ndewijer/CryptoShield-Backend/internal/validation"
	"github.com/ndewijer/CryptoShield-Backend/internal/view"
)

// DashboardHandler renders the HTML dashboard.
type DashboardHandler struct {
	allocationService *service.AllocationService
	renderer          *view.Renderer
	log               zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(allocationService *service.AllocationService, renderer *view.Renderer, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		allocationService: allocationService,
		renderer:          renderer,
		log:               logging.Component(log, "dashboard"),
	}
}

// Dashboard handles GET requests for the dashboard page. The profile form submits
// back to this endpoint with query parameters name, capital, risk and goal.
//
// Endpoint: GET /
// Response: 200 OK with the rendered page
// Errors:
//   - 400 Bad Request with the form and field errors for invalid input
//   - 422 or 500 with the form and an error banner when the catalog cannot be used
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := h.allocationService.ProfileOptions()

	profile, fieldErrs := request.DashboardQuery{
		Name:    q.Get("name"),
		Capital: q.Get("capital"),
		Risk:    q.Get("risk"),
		Goal:    q.Get("goal"),
	}.ToProfile(opts.Default)

	page := view.Page{
		CapitalMin:  opts.CapitalMin,
		CapitalMax:  opts.CapitalMax,
		CapitalStep: opts.CapitalStep,
	}

	status := http.StatusOK
	if fieldErrs != nil {
		status = http.StatusBadRequest
		page.FieldErrors = fieldErrs
	} else if analysis, err := h.allocationService.Analyze(r.Context(), profile); err != nil {
		status = statusFor(err)
		var verr *validation.Error
		if errors.As(err, &verr) {
			page.FieldErrors = verr.Fields
		} else {
			h.log.Error().Err(err).Msg("failed to build dashboard")
			page.Error = "Recommendations are currently unavailable. Please try again later."
		}
	} else {
		d := view.BuildDashboard(analysis)
		page.Dashboard = &d
	}

	h.render(w, status, withProfile(page, profile))
}

func withProfile(p view.Page, profile model.InvestorProfile) view.Page {
	p.Profile = profile
	p.Risks = view.RiskOptions(profile.RiskTolerance)
	p.Goals = view.GoalOptions(profile.Goal)
	return p
}

func (h *DashboardHandler) render(w http.ResponseWriter, status int, p view.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, p); err != nil {
		h.log.Error().Err(err).Msg(apperrors.ErrFailedToRenderDashboard.Error())
		http.Error(w, apperrors.ErrFailedToRenderDashboard.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug().Err(err).Msg("failed to write dashboard response")
	}
}
