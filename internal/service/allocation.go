package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// AllocationInput carries everything the calculator needs. Nothing is read from
// package state or configuration.
type AllocationInput struct {
	Capital         decimal.Decimal
	Recommendations []model.Recommendation
	StopLossPercent decimal.Decimal
}

// ComputeAllocation splits capital across the recommendations by their allocation
// percentages and derives per-item and portfolio-level figures.
//
// Calculation:
//   - allocated = capital * allocation / 100
//   - max loss = allocated * stopLoss / 100
//   - expected profit = allocated * expectedReturn / 100
//   - cash reserve % = 100 - sum(allocation), passed through even when negative
//   - weighted return % = sum(allocation / 100 * expectedReturn)
//   - portfolio max loss = capital * stopLoss / 100 * totalAllocated / 100
//
// All arithmetic is exact. The function is pure: identical inputs give identical
// results and the input slice is not modified.
//
// Returns ErrNonPositiveCapital, ErrNoRecommendations, ErrInvalidStopLoss,
// ErrNegativeAllocation or ErrAllocationOutOfRange for degenerate input.
func ComputeAllocation(in AllocationInput) (model.Allocation, error) {
	if !in.Capital.IsPositive() {
		return model.Allocation{}, fmt.Errorf("%w: got %s", apperrors.ErrNonPositiveCapital, in.Capital)
	}
	if len(in.Recommendations) == 0 {
		return model.Allocation{}, apperrors.ErrNoRecommendations
	}
	if in.StopLossPercent.IsNegative() {
		return model.Allocation{}, fmt.Errorf("%w: got %s", apperrors.ErrInvalidStopLoss, in.StopLossPercent)
	}

	stopLoss := in.StopLossPercent.Div(hundred)
	breakdowns := make([]model.RecommendationBreakdown, len(in.Recommendations))
	totalPercent := decimal.Zero
	totalAmount := decimal.Zero
	weightedReturn := decimal.Zero

	for i, rec := range in.Recommendations {
		if rec.Allocation.IsNegative() {
			return model.Allocation{}, fmt.Errorf("%w: %s has %s%%", apperrors.ErrNegativeAllocation, rec.Symbol, rec.Allocation)
		}
		if rec.Allocation.GreaterThan(hundred) {
			return model.Allocation{}, fmt.Errorf("%w: %s has %s%%", apperrors.ErrAllocationOutOfRange, rec.Symbol, rec.Allocation)
		}

		weight := rec.Allocation.Div(hundred)
		allocated := in.Capital.Mul(weight)

		breakdowns[i] = model.RecommendationBreakdown{
			Recommendation:  rec,
			AllocatedAmount: allocated,
			MaxLoss:         allocated.Mul(stopLoss),
			ExpectedProfit:  allocated.Mul(rec.ExpectedReturn).Div(hundred),
		}

		totalPercent = totalPercent.Add(rec.Allocation)
		totalAmount = totalAmount.Add(allocated)
		weightedReturn = weightedReturn.Add(weight.Mul(rec.ExpectedReturn))
	}

	cashPercent := hundred.Sub(totalPercent)
	maxLoss := in.Capital.Mul(stopLoss).Mul(totalPercent).Div(hundred)

	return model.Allocation{
		Capital:         in.Capital,
		StopLossPercent: in.StopLossPercent,
		Breakdowns:      breakdowns,
		Summary: model.PortfolioSummary{
			TotalAllocatedPercent: totalPercent,
			CashReservePercent:    cashPercent,
			WeightedReturnPercent: weightedReturn,
			ExpectedProfit:        in.Capital.Mul(weightedReturn).Div(hundred),
			MaxPortfolioLoss:      maxLoss,
			MaxLossPercent:        maxLoss.Div(in.Capital).Mul(hundred),
			TotalAllocatedAmount:  totalAmount,
			CashReserveAmount:     in.Capital.Mul(cashPercent).Div(hundred),
			OverAllocated:         totalPercent.GreaterThan(hundred),
		},
	}, nil
}
