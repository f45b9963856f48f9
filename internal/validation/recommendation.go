package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ValidateRecommendations rejects catalogs the calculator cannot use meaningfully:
// an empty list, a non-positive price, or a confidence or allocation outside [0,100].
// The sum of allocations is not checked; over-allocation is passed through.
func ValidateRecommendations(recs []model.Recommendation) error {
	if len(recs) == 0 {
		return apperrors.ErrNoRecommendations
	}
	for _, r := range recs {
		if !r.CurrentPrice.IsPositive() {
			return fmt.Errorf("%w: %s price %s", apperrors.ErrInvalidPrice, r.Symbol, r.CurrentPrice)
		}
		if r.Confidence.IsNegative() || r.Confidence.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s confidence %s", apperrors.ErrConfidenceOutOfRange, r.Symbol, r.Confidence)
		}
		if r.Allocation.IsNegative() {
			return fmt.Errorf("%w: %s allocation %s", apperrors.ErrNegativeAllocation, r.Symbol, r.Allocation)
		}
		if r.Allocation.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s allocation %s", apperrors.ErrAllocationOutOfRange, r.Symbol, r.Allocation)
		}
	}
	return nil
}
