package handlers

import (
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// Response types convert exact decimals to float64 at the API boundary only.

// RecommendationResponse is the JSON form of a catalog entry.
type RecommendationResponse struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"currentPrice"`
	ExpectedReturn float64 `json:"expectedReturn"`
	Confidence     float64 `json:"confidence"`
	Allocation     float64 `json:"allocation"`
	Horizon        string  `json:"horizon"`
	Rationale      string  `json:"rationale"`
}

// BreakdownResponse is one recommendation with its currency figures.
type BreakdownResponse struct {
	RecommendationResponse
	AllocatedAmount float64 `json:"allocatedAmount"`
	MaxLoss         float64 `json:"maxLoss"`
	ExpectedProfit  float64 `json:"expectedProfit"`
}

// SummaryResponse is the portfolio summary.
type SummaryResponse struct {
	TotalAllocatedPercent float64 `json:"totalAllocatedPercent"`
	CashReservePercent    float64 `json:"cashReservePercent"`
	WeightedReturnPercent float64 `json:"weightedReturnPercent"`
	ExpectedProfit        float64 `json:"expectedProfit"`
	MaxPortfolioLoss      float64 `json:"maxPortfolioLoss"`
	MaxLossPercent        float64 `json:"maxLossPercent"`
	TotalAllocatedAmount  float64 `json:"totalAllocatedAmount"`
	CashReserveAmount     float64 `json:"cashReserveAmount"`
	OverAllocated         bool    `json:"overAllocated"`
}

// MarketResponse compares the weighted return with the market average.
type MarketResponse struct {
	MarketAverageReturn float64 `json:"marketAverageReturn"`
	Outperformance      float64 `json:"outperformance"`
}

// ChartSliceResponse is one pie chart segment.
type ChartSliceResponse struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// AllocationResponse is returned by POST /api/allocation.
type AllocationResponse struct {
	Profile            model.InvestorProfile `json:"profile"`
	Capital            float64               `json:"capital"`
	CapitalUSD         float64               `json:"capitalUsd"`
	USDRate            float64               `json:"usdRate"`
	StopLossPercent    float64               `json:"stopLossPercent"`
	PositionLimit      float64               `json:"positionLimitPercent"`
	MaxRiskPerTrade    float64               `json:"maxRiskPerTrade"`
	HeadlineConfidence float64               `json:"headlineConfidence"`
	Recommendations    []BreakdownResponse   `json:"recommendations"`
	Summary            SummaryResponse       `json:"summary"`
	Market             MarketResponse        `json:"market"`
	Chart              []ChartSliceResponse  `json:"chart"`
}

// ProfileOptionResponse is one selectable enum value.
type ProfileOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProfileOptionsResponse is returned by GET /api/profile/options.
type ProfileOptionsResponse struct {
	RiskTolerances []ProfileOptionResponse `json:"riskTolerances"`
	Goals          []ProfileOptionResponse `json:"goals"`
	CapitalMin     int64                   `json:"capitalMin"`
	CapitalMax     int64                   `json:"capitalMax"`
	CapitalDefault int64                   `json:"capitalDefault"`
	CapitalStep    int64                   `json:"capitalStep"`
	Default        model.InvestorProfile   `json:"default"`
}

func newRecommendationResponse(r model.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:             r.ID,
		Symbol:         r.Symbol,
		Name:           r.Name,
		CurrentPrice:   r.CurrentPrice.InexactFloat64(),
		ExpectedReturn: r.ExpectedReturn.InexactFloat64(),
		Confidence:     r.Confidence.InexactFloat64(),
		Allocation:     r.Allocation.InexactFloat64(),
		Horizon:        r.Horizon,
		Rationale:      r.Rationale,
	}
}

func newAllocationResponse(a model.Analysis) AllocationResponse {
	alloc := a.Allocation
	sum := alloc.Summary

	recs := make([]BreakdownResponse, len(alloc.Breakdowns))
	for i, b := range alloc.Breakdowns {
		recs[i] = BreakdownResponse{
			RecommendationResponse: newRecommendationResponse(b.Recommendation),
			AllocatedAmount:        b.AllocatedAmount.InexactFloat64(),
			MaxLoss:                b.MaxLoss.InexactFloat64(),
			ExpectedProfit:         b.ExpectedProfit.InexactFloat64(),
		}
	}

	chart := make([]ChartSliceResponse, len(a.Chart))
	for i, s := range a.Chart {
		chart[i] = ChartSliceResponse{Label: s.Label, Percent: s.Percent.InexactFloat64()}
	}

	return AllocationResponse{
		Profile:            a.Profile,
		Capital:            alloc.Capital.InexactFloat64(),
		CapitalUSD:         a.CapitalUSD.Round(2).InexactFloat64(),
		USDRate:            a.USDRate.InexactFloat64(),
		StopLossPercent:    alloc.StopLossPercent.InexactFloat64(),
		PositionLimit:      a.PositionLimit.InexactFloat64(),
		MaxRiskPerTrade:    a.MaxRiskPerTrade.InexactFloat64(),
		HeadlineConfidence: a.HeadlineConfidence.InexactFloat64(),
		Recommendations:    recs,
		Summary: SummaryResponse{
			TotalAllocatedPercent: sum.TotalAllocatedPercent.InexactFloat64(),
			CashReservePercent:    sum.CashReservePercent.InexactFloat64(),
			WeightedReturnPercent: sum.WeightedReturnPercent.InexactFloat64(),
			ExpectedProfit:        sum.ExpectedProfit.InexactFloat64(),
			MaxPortfolioLoss:      sum.MaxPortfolioLoss.InexactFloat64(),
			MaxLossPercent:        sum.MaxLossPercent.InexactFloat64(),
			TotalAllocatedAmount:  sum.TotalAllocatedAmount.InexactFloat64(),
			CashReserveAmount:     sum.CashReserveAmount.InexactFloat64(),
			OverAllocated:         sum.OverAllocated,
		},
		Market: MarketResponse{
			MarketAverageReturn: a.Market.MarketAverageReturn.InexactFloat64(),
			Outperformance:      a.Market.Outperformance.InexactFloat64(),
		},
		Chart: chart,
	}
}
