package model

import "github.com/shopspring/decimal"

// Recommendation is a single entry of the recommendation catalog.
// Percentages are 0-100 values; ExpectedReturn may be negative.
// Records are immutable once loaded and are shared between requests.
type Recommendation struct {
	ID             string          `json:"id"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`   // Quote price in USD
	ExpectedReturn decimal.Decimal `json:"expectedReturn"` // Expected return over Horizon, percent
	Confidence     decimal.Decimal `json:"confidence"`     // Percent in [0,100]
	Allocation     decimal.Decimal `json:"allocation"`     // Share of capital, percent in [0,100]
	Horizon        string          `json:"horizon"`
	Rationale      string          `json:"rationale"`
}
