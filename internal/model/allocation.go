package model

import "github.com/shopspring/decimal"

// RecommendationBreakdown holds the currency figures derived for one recommendation.
// Amounts are exact; truncation to whole units happens at display time.
type RecommendationBreakdown struct {
	Recommendation  Recommendation
	AllocatedAmount decimal.Decimal // capital * allocation / 100
	MaxLoss         decimal.Decimal // AllocatedAmount * stop loss / 100
	ExpectedProfit  decimal.Decimal // AllocatedAmount * expected return / 100
}

// PortfolioSummary aggregates the breakdowns of a single computation.
type PortfolioSummary struct {
	TotalAllocatedPercent decimal.Decimal
	CashReservePercent    decimal.Decimal // 100 - TotalAllocatedPercent, may be negative
	WeightedReturnPercent decimal.Decimal
	ExpectedProfit        decimal.Decimal
	MaxPortfolioLoss      decimal.Decimal
	MaxLossPercent        decimal.Decimal // MaxPortfolioLoss as percent of capital
	TotalAllocatedAmount  decimal.Decimal
	CashReserveAmount     decimal.Decimal
	OverAllocated         bool // allocations sum to more than 100 percent
}

// Allocation is the full result of the allocation calculator.
type Allocation struct {
	Capital         decimal.Decimal
	StopLossPercent decimal.Decimal
	Breakdowns      []RecommendationBreakdown
	Summary         PortfolioSummary
}

// ChartSlice is one segment of the allocation pie chart.
type ChartSlice struct {
	Label   string          `json:"label"`
	Percent decimal.Decimal `json:"percent"`
}

// MarketComparison relates the portfolio return to the market average.
type MarketComparison struct {
	MarketAverageReturn decimal.Decimal
	Outperformance      decimal.Decimal
}

// Analysis is what the dashboard shows for one investor profile.
type Analysis struct {
	Profile            InvestorProfile
	Allocation         Allocation
	USDRate            decimal.Decimal
	CapitalUSD         decimal.Decimal
	MaxRiskPerTrade    decimal.Decimal
	PositionLimit      decimal.Decimal
	HeadlineConfidence decimal.Decimal
	Market             MarketComparison
	Chart              []ChartSlice
}
