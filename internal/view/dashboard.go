package view

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// Card is one recommendation as shown on the dashboard.
type Card struct {
	Rank           int
	Symbol         string
	Name           string
	Price          string
	ExpectedReturn string
	Confidence     string
	Allocation     string
	Horizon        string
	Rationale      string
	Amount         string
	MaxLoss        string
	ExpectedProfit string
}

// Summary is the portfolio summary block of the dashboard.
type Summary struct {
	WeightedReturn   string
	ExpectedProfit   string
	MarketAverage    string
	Outperformance   string
	CashReserve      string
	CashReservePct   string
	TotalAllocated   string
	TotalAllocPct    string
	MaxPortfolioLoss string
	MaxLossPct       string
	StopLoss         string
	OverAllocated    bool
}

// Dashboard holds preformatted strings for every figure on the page.
type Dashboard struct {
	Capital         string
	CapitalUSD      string
	Confidence      string
	MaxRiskPerTrade string
	PositionLimit   string
	Cards           []Card
	Summary         Summary
	Chart           []ChartRow
}

// ChartRow is one allocation bar.
type ChartRow struct {
	Label   string
	Percent string
	Width   string // CSS width, clamped to [0,100]
}

// BuildDashboard formats an analysis for display. Amounts are truncated to whole
// units with WholeUnits. Displayed totals are sums of the displayed items, and the
// displayed cash reserve is the displayed capital minus the displayed invested total.
func BuildDashboard(a model.Analysis) Dashboard {
	alloc := a.Allocation
	sum := alloc.Summary

	cards := make([]Card, len(alloc.Breakdowns))
	var shownTotal, shownMaxLoss, shownProfit int64
	for i, b := range alloc.Breakdowns {
		rec := b.Recommendation
		amount := WholeUnits(b.AllocatedAmount)
		maxLoss := WholeUnits(b.MaxLoss)
		profit := WholeUnits(b.ExpectedProfit)
		shownTotal += amount
		shownMaxLoss += maxLoss
		shownProfit += profit

		cards[i] = Card{
			Rank:           i + 1,
			Symbol:         rec.Symbol,
			Name:           rec.Name,
			Price:          Price(rec.CurrentPrice),
			ExpectedReturn: SignedPercent(rec.ExpectedReturn),
			Confidence:     Percent(rec.Confidence),
			Allocation:     Percent(rec.Allocation),
			Horizon:        rec.Horizon,
			Rationale:      rec.Rationale,
			Amount:         nairaUnits(amount),
			MaxLoss:        nairaUnits(maxLoss),
			ExpectedProfit: nairaUnits(profit),
		}
	}

	chart := make([]ChartRow, len(a.Chart))
	for i, s := range a.Chart {
		width := decimal.Max(decimal.Zero, decimal.Min(s.Percent, decimal.NewFromInt(100)))
		chart[i] = ChartRow{
			Label:   s.Label,
			Percent: Percent(s.Percent),
			Width:   width.StringFixed(1) + "%",
		}
	}

	return Dashboard{
		Capital:         Naira(alloc.Capital),
		CapitalUSD:      USD(a.CapitalUSD),
		Confidence:      Percent(a.HeadlineConfidence),
		MaxRiskPerTrade: Naira(a.MaxRiskPerTrade),
		PositionLimit:   Percent(a.PositionLimit),
		Cards:           cards,
		Chart:           chart,
		Summary: Summary{
			WeightedReturn:   SignedPercent(sum.WeightedReturnPercent),
			ExpectedProfit:   nairaUnits(shownProfit),
			MarketAverage:    SignedPercent(a.Market.MarketAverageReturn),
			Outperformance:   SignedPercent(a.Market.Outperformance),
			CashReserve:      nairaUnits(WholeUnits(alloc.Capital) - shownTotal),
			CashReservePct:   Percent(sum.CashReservePercent),
			TotalAllocated:   nairaUnits(shownTotal),
			TotalAllocPct:    Percent(sum.TotalAllocatedPercent),
			MaxPortfolioLoss: nairaUnits(shownMaxLoss),
			MaxLossPct:       sum.MaxLossPercent.StringFixed(1) + "%",
			StopLoss:         Percent(alloc.StopLossPercent),
			OverAllocated:    sum.OverAllocated,
		},
	}
}
