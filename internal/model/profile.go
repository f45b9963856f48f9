package model

// RiskTolerance is the investor's self-declared appetite for risk.
// Values are ordered from least to most risk.
type RiskTolerance string

const (
	RiskVeryConservative RiskTolerance = "very_conservative"
	RiskConservative     RiskTolerance = "conservative"
	RiskModerate         RiskTolerance = "moderate"
	RiskAggressive       RiskTolerance = "aggressive"
)

// RiskTolerances lists every tolerance in ascending order of risk.
var RiskTolerances = []RiskTolerance{
	RiskVeryConservative,
	RiskConservative,
	RiskModerate,
	RiskAggressive,
}

var riskLabels = map[RiskTolerance]string{
	RiskVeryConservative: "Very Conservative",
	RiskConservative:     "Conservative",
	RiskModerate:         "Moderate",
	RiskAggressive:       "Aggressive",
}

// Label returns the display name of the tolerance.
func (r RiskTolerance) Label() string {
	return riskLabels[r]
}

// Valid reports whether r is one of RiskTolerances.
func (r RiskTolerance) Valid() bool {
	return r.Rank() >= 0
}

// Rank returns the position of r in RiskTolerances, or -1 when r is unknown.
func (r RiskTolerance) Rank() int {
	for i, v := range RiskTolerances {
		if v == r {
			return i
		}
	}
	return -1
}

// Goal is the investor's primary reason for investing.
type Goal string

const (
	GoalProtectAgainstInflation Goal = "protect_against_inflation"
	GoalBuildLongTermWealth     Goal = "build_long_term_wealth"
	GoalLearnAboutCrypto        Goal = "learn_about_crypto"
	GoalGenerateIncome          Goal = "generate_income"
)

// Goals lists every goal in display order.
var Goals = []Goal{
	GoalProtectAgainstInflation,
	GoalBuildLongTermWealth,
	GoalLearnAboutCrypto,
	GoalGenerateIncome,
}

var goalLabels = map[Goal]string{
	GoalProtectAgainstInflation: "Protect against inflation",
	GoalBuildLongTermWealth:     "Build long-term wealth",
	GoalLearnAboutCrypto:        "Learn about crypto",
	GoalGenerateIncome:          "Generate income",
}

// Label returns the display name of the goal.
func (g Goal) Label() string {
	return goalLabels[g]
}

// Valid reports whether g is one of Goals.
func (g Goal) Valid() bool {
	_, ok := goalLabels[g]
	return ok
}

// InvestorProfile is the per-request user input. It is never stored.
// Name, RiskTolerance and Goal are echoed back but do not influence any figure.
type InvestorProfile struct {
	Name          string        `json:"name" validate:"max=100"`
	Capital       int64         `json:"capital"`
	RiskTolerance RiskTolerance `json:"riskTolerance" validate:"required,risk_tolerance"`
	Goal          Goal          `json:"goal" validate:"required,investment_goal"`
}
