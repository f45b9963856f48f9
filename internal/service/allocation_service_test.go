package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
	"github.com/ndewijer/CryptoShield-Backend/internal/testutil"
	"github.com/ndewijer/CryptoShield-Backend/internal/validation"
)

// failingSource simulates a catalog backend that is unavailable.
type failingSource struct{}

func (failingSource) Recommendations(context.Context) ([]model.Recommendation, error) {
	return nil, errors.New("backend down")
}

func (failingSource) Recommendation(context.Context, string) (model.Recommendation, error) {
	return model.Recommendation{}, errors.New("backend down")
}

func defaultProfile(capital int64) model.InvestorProfile {
	return model.InvestorProfile{
		Name:          "Mike",
		Capital:       capital,
		RiskTolerance: model.RiskConservative,
		Goal:          model.GoalBuildLongTermWealth,
	}
}

func TestAllocationService_Analyze(t *testing.T) {
	t.Run("computes dashboard figures for default catalog", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		analysis, err := svc.Analyze(context.Background(), defaultProfile(50000))
		require.NoError(t, err)

		assert.Equal(t, "Mike", analysis.Profile.Name)
		assert.Equal(t, "60.24", analysis.CapitalUSD.StringFixed(2))
		assertDecimal(t, "10000", analysis.MaxRiskPerTrade, "max risk per trade")
		assertDecimal(t, "20", analysis.PositionLimit, "position limit")
		assertDecimal(t, "95", analysis.HeadlineConfidence, "headline confidence")
		assertDecimal(t, "-0.46", analysis.Market.MarketAverageReturn, "market average")
		assertDecimal(t, "0.6565", analysis.Market.Outperformance, "outperformance")
		assertDecimal(t, "98.25", analysis.Allocation.Summary.ExpectedProfit, "expected profit")

		require.Len(t, analysis.Chart, 4)
		assert.Equal(t, "Algorand", analysis.Chart[0].Label)
		assert.Equal(t, service.CashReserveLabel, analysis.Chart[3].Label)
		assertDecimal(t, "45", analysis.Chart[3].Percent, "cash slice")
	})

	t.Run("risk tolerance and goal do not change figures", func(t *testing.T) {
		svc := testutil.NewTestAllocationService(t)

		base, err := svc.Analyze(context.Background(), defaultProfile(120000))
		require.NoError(t, err)

		for _, risk := range model.RiskTolerances {
			for _, goal := range model.Goals {
				p := defaultProfile(120000)
				p.RiskTolerance = risk
				p.Goal = goal

				got, err := svc.Analyze(context.Background(), p)
				require.NoError(t, err)
				assert.Equal(t, base.Allocation, got.Allocation)
			}
		}
	})

	t.Run("headline confidence is the lowest in the catalog", func(t *testing.T) {
		svc := testutil.NewTestAllocationServiceWithRecommendations(t, []model.Recommendation{
			testutil.NewRecommendation().WithConfidence("97").Build(),
			testutil.NewRecommendation().WithConfidence("81.5").Build(),
		})

		analysis, err := svc.Analyze(context.Background(), defaultProfile(50000))
		require.NoError(t, err)
		assertDecimal(t, "81.5", analysis.HeadlineConfidence, "headline confidence")
	})

	t.Run("rejects capital outside bounds before computing", func(t *testing.T) {
		svc := testutil.NewTestAllocationServiceWithSource(t, failingSource{})

		_, err := svc.Analyze(context.Background(), defaultProfile(5000))

		var verr *validation.Error
		require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
		assert.Contains(t, verr.Fields, "capital")
	})

	t.Run("wraps source failures", func(t *testing.T) {
		svc := testutil.NewTestAllocationServiceWithSource(t, failingSource{})

		_, err := svc.Analyze(context.Background(), defaultProfile(50000))
		assert.ErrorIs(t, err, apperrors.ErrFailedToRetrieveRecommendations)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		svc := testutil.NewTestAllocationServiceWithRecommendations(t, []model.Recommendation{})

		_, err := svc.Analyze(context.Background(), defaultProfile(50000))
		assert.ErrorIs(t, err, apperrors.ErrNoRecommendations)
	})

	t.Run("rejects negative allocation", func(t *testing.T) {
		svc := testutil.NewTestAllocationServiceWithRecommendations(t, []model.Recommendation{
			testutil.NewRecommendation().WithAllocation("-10").Build(),
		})

		_, err := svc.Analyze(context.Background(), defaultProfile(50000))
		assert.ErrorIs(t, err, apperrors.ErrNegativeAllocation)
	})

	t.Run("sqlite catalog matches static catalog", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		dbSvc := testutil.NewTestAllocationServiceWithDB(t, db)
		staticSvc := testutil.NewTestAllocationService(t)

		fromDB, err := dbSvc.Analyze(context.Background(), defaultProfile(75000))
		require.NoError(t, err)
		fromStatic, err := staticSvc.Analyze(context.Background(), defaultProfile(75000))
		require.NoError(t, err)

		require.Len(t, fromDB.Allocation.Breakdowns, len(fromStatic.Allocation.Breakdowns))
		for i := range fromDB.Allocation.Breakdowns {
			a, b := fromDB.Allocation.Breakdowns[i], fromStatic.Allocation.Breakdowns[i]
			assert.Equal(t, b.Recommendation.ID, a.Recommendation.ID)
			assertDecimal(t, b.AllocatedAmount.String(), a.AllocatedAmount, "allocated amount")
			assertDecimal(t, b.ExpectedProfit.String(), a.ExpectedProfit, "expected profit")
		}
		assertDecimal(t, fromStatic.Allocation.Summary.WeightedReturnPercent.String(),
			fromDB.Allocation.Summary.WeightedReturnPercent, "weighted return")
	})
}

func TestAllocationService_Recommendation(t *testing.T) {
	svc := testutil.NewTestAllocationService(t)

	t.Run("returns catalog entry", func(t *testing.T) {
		want := testutil.DefaultRecommendations()[1]

		got, err := svc.Recommendation(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, "UNI/USDT", got.Symbol)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := svc.Recommendation(context.Background(), testutil.MakeID())
		assert.ErrorIs(t, err, apperrors.ErrRecommendationNotFound)
	})

	t.Run("wraps source failures", func(t *testing.T) {
		failing := testutil.NewTestAllocationServiceWithSource(t, failingSource{})

		_, err := failing.Recommendation(context.Background(), testutil.MakeID())
		assert.ErrorIs(t, err, apperrors.ErrFailedToRetrieveRecommendation)
	})
}

func TestAllocationService_ProfileOptions(t *testing.T) {
	opts := testutil.NewTestAllocationService(t).ProfileOptions()

	assert.Equal(t, int64(10000), opts.CapitalMin)
	assert.Equal(t, int64(1000000), opts.CapitalMax)
	assert.Equal(t, int64(50000), opts.Default.Capital)
	assert.Equal(t, model.RiskConservative, opts.Default.RiskTolerance)
	assert.Len(t, opts.RiskTolerances, 4)
	assert.Len(t, opts.Goals, 4)
}

func TestStaticRecommendationSource(t *testing.T) {
	t.Run("returns copies", func(t *testing.T) {
		src := service.NewStaticRecommendationSource(nil)

		first, err := src.Recommendations(context.Background())
		require.NoError(t, err)
		first[0].Symbol = "MUTATED"

		second, err := src.Recommendations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ALGO/USDT", second[0].Symbol)
	})

	t.Run("keeps catalog order", func(t *testing.T) {
		recs, err := service.NewStaticRecommendationSource(nil).Recommendations(context.Background())
		require.NoError(t, err)

		symbols := make([]string, len(recs))
		for i, r := range recs {
			symbols[i] = r.Symbol
		}
		assert.Equal(t, []string{"ALGO/USDT", "UNI/USDT", "BTC/USDT"}, symbols)
	})
}
