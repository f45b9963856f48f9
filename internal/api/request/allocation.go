package request

import (
	"strconv"
	"strings"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// AllocationRequest represents the request body for computing an allocation.
// Empty riskTolerance and goal fall back to the defaults.
type AllocationRequest struct {
	Name          string `json:"name"`
	Capital       *int64 `json:"capital"`
	RiskTolerance string `json:"riskTolerance"`
	Goal          string `json:"goal"`
}

// ToProfile converts the request into an InvestorProfile, filling omitted
// fields from def. The result still has to be validated.
func (r AllocationRequest) ToProfile(def model.InvestorProfile) model.InvestorProfile {
	p := def
	p.Name = strings.TrimSpace(r.Name)
	if r.Capital != nil {
		p.Capital = *r.Capital
	}
	if r.RiskTolerance != "" {
		p.RiskTolerance = model.RiskTolerance(strings.TrimSpace(r.RiskTolerance))
	}
	if r.Goal != "" {
		p.Goal = model.Goal(strings.TrimSpace(r.Goal))
	}
	return p
}

// DashboardQuery holds the raw dashboard form values from the query string.
type DashboardQuery struct {
	Name    string
	Capital string
	Risk    string
	Goal    string
}

// ToProfile parses the query into an InvestorProfile, filling empty values from def.
// A non-numeric capital keeps the default and is reported as a capital field error.
func (q DashboardQuery) ToProfile(def model.InvestorProfile) (model.InvestorProfile, map[string]string) {
	req := AllocationRequest{
		Name:          q.Name,
		RiskTolerance: q.Risk,
		Goal:          q.Goal,
	}

	var errs map[string]string
	if c := strings.TrimSpace(q.Capital); c != "" {
		n, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			errs = map[string]string{"capital": "capital must be a whole number"}
		} else {
			req.Capital = &n
		}
	}

	return req.ToProfile(def), errs
}
