package view

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
)

func sampleAnalysis() model.Analysis {
	d := decimal.RequireFromString
	rec := model.Recommendation{
		Symbol:         "ALGO/USDT",
		Name:           "Algorand",
		CurrentPrice:   d("0.284"),
		ExpectedReturn: d("0.52"),
		Confidence:     d("95"),
		Allocation:     d("20"),
		Horizon:        "24 hours",
		Rationale:      "Strong <b>sentiment</b>",
	}
	return model.Analysis{
		Profile: model.InvestorProfile{Name: "Ada", Capital: 50000, RiskTolerance: model.RiskModerate, Goal: model.GoalGenerateIncome},
		Allocation: model.Allocation{
			Capital:         d("50000"),
			StopLossPercent: d("2"),
			Breakdowns: []model.RecommendationBreakdown{
				{Recommendation: rec, AllocatedAmount: d("10000"), MaxLoss: d("200"), ExpectedProfit: d("52")},
			},
			Summary: model.PortfolioSummary{
				TotalAllocatedPercent: d("20"),
				CashReservePercent:    d("80"),
				WeightedReturnPercent: d("0.104"),
				ExpectedProfit:        d("52"),
				MaxPortfolioLoss:      d("200"),
				MaxLossPercent:        d("0.4"),
				TotalAllocatedAmount:  d("10000"),
				CashReserveAmount:     d("40000"),
			},
		},
		CapitalUSD:         d("60.2409638554216867"),
		MaxRiskPerTrade:    d("10000"),
		PositionLimit:      d("20"),
		HeadlineConfidence: d("95"),
		Market:             model.MarketComparison{MarketAverageReturn: d("-0.46"), Outperformance: d("0.564")},
		Chart: []model.ChartSlice{
			{Label: "Algorand", Percent: d("20")},
			{Label: "Cash Reserve", Percent: d("80")},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	dash := BuildDashboard(sampleAnalysis())

	assert.Equal(t, "₦50,000", dash.Capital)
	assert.Equal(t, "$60.24", dash.CapitalUSD)
	require.Len(t, dash.Cards, 1)
	assert.Equal(t, "₦10,000", dash.Cards[0].Amount)
	assert.Equal(t, "₦200", dash.Cards[0].MaxLoss)
	assert.Equal(t, "+0.52%", dash.Cards[0].ExpectedReturn)
	assert.Equal(t, "+0.10%", dash.Summary.WeightedReturn)
	assert.Equal(t, "₦40,000", dash.Summary.CashReserve)
	assert.Equal(t, "0.4%", dash.Summary.MaxLossPct)
	assert.Equal(t, "80.0%", dash.Chart[1].Width)
}

func TestBuildDashboard_TotalIsSumOfShownItems(t *testing.T) {
	a := sampleAnalysis()
	b := a.Allocation.Breakdowns[0]
	b.AllocatedAmount = decimal.RequireFromString("3333.7")
	a.Allocation.Breakdowns = []model.RecommendationBreakdown{b, b, b}
	a.Allocation.Summary.TotalAllocatedAmount = decimal.RequireFromString("10001.1")

	dash := BuildDashboard(a)

	assert.Equal(t, "₦3,333", dash.Cards[0].Amount)
	assert.Equal(t, "₦9,999", dash.Summary.TotalAllocated)
}

func TestBuildDashboard_UnevenCapitalAddsUp(t *testing.T) {
	capital := decimal.NewFromInt(10099)
	alloc, err := service.ComputeAllocation(service.AllocationInput{
		Capital:         capital,
		Recommendations: service.DefaultCatalog(),
		StopLossPercent: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	dash := BuildDashboard(model.Analysis{Allocation: alloc})

	require.Len(t, dash.Cards, 3)
	assert.Equal(t, "₦2,019", dash.Cards[0].Amount)
	assert.Equal(t, "₦2,019", dash.Cards[1].Amount)
	assert.Equal(t, "₦1,514", dash.Cards[2].Amount)
	assert.Equal(t, "₦5,552", dash.Summary.TotalAllocated)
	assert.Equal(t, "₦4,547", dash.Summary.CashReserve, "invested plus cash equals capital")

	assert.Equal(t, "₦40", dash.Cards[0].MaxLoss)
	assert.Equal(t, "₦40", dash.Cards[1].MaxLoss)
	assert.Equal(t, "₦30", dash.Cards[2].MaxLoss)
	assert.Equal(t, "₦110", dash.Summary.MaxPortfolioLoss)

	assert.Equal(t, "₦10", dash.Cards[0].ExpectedProfit)
	assert.Equal(t, "₦7", dash.Cards[1].ExpectedProfit)
	assert.Equal(t, "₦2", dash.Cards[2].ExpectedProfit)
	assert.Equal(t, "₦19", dash.Summary.ExpectedProfit)
}

func TestBuildDashboard_OverAllocatedCashIsNegative(t *testing.T) {
	a := sampleAnalysis()
	b := a.Allocation.Breakdowns[0]
	b.AllocatedAmount = decimal.NewFromInt(30000)
	a.Allocation.Breakdowns = []model.RecommendationBreakdown{b, b}

	dash := BuildDashboard(a)

	assert.Equal(t, "₦60,000", dash.Summary.TotalAllocated)
	assert.Equal(t, "-₦10,000", dash.Summary.CashReserve)
}

func TestBuildDashboard_ClampsChartWidth(t *testing.T) {
	a := sampleAnalysis()
	a.Chart = []model.ChartSlice{
		{Label: "Big", Percent: decimal.NewFromInt(115)},
		{Label: "Cash Reserve", Percent: decimal.NewFromInt(-15)},
	}

	dash := BuildDashboard(a)

	assert.Equal(t, "100.0%", dash.Chart[0].Width)
	assert.Equal(t, "0.0%", dash.Chart[1].Width)
	assert.Equal(t, "-15%", dash.Chart[1].Percent)
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("renders dashboard with risk tab", func(t *testing.T) {
		a := sampleAnalysis()
		dash := BuildDashboard(a)

		var buf bytes.Buffer
		err := r.Render(&buf, Page{
			Profile:   a.Profile,
			Risks:     RiskOptions(a.Profile.RiskTolerance),
			Goals:     GoalOptions(a.Profile.Goal),
			Dashboard: &dash,
		})
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, "Algorand (ALGO/USDT)")
		assert.Contains(t, html, "₦10,000")
		assert.Contains(t, html, `<option value="moderate" selected>Moderate</option>`)
		assert.Contains(t, html, "Risk protection")
		assert.Contains(t, html, "<strong>Cash reserve:</strong> ₦40,000 kept aside")
		assert.Contains(t, html, "the least confident recommendation shown is rated 95%")
		assert.NotContains(t, html, "or higher are shown")
		assert.Contains(t, html, "Strong &lt;b&gt;sentiment&lt;/b&gt;")
	})

	t.Run("renders form errors without dashboard", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, Page{
			Profile:     model.InvestorProfile{Capital: 5},
			Risks:       RiskOptions(model.RiskConservative),
			Goals:       GoalOptions(model.GoalLearnAboutCrypto),
			FieldErrors: map[string]string{"capital": "capital must be between 10,000 and 1,000,000"},
		})
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, "capital must be between 10,000 and 1,000,000")
		assert.NotContains(t, html, "Risk protection")
		assert.Contains(t, html, "Nigerian context")
	})
}
