package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// RecommendationSource supplies the recommendation catalog. Implementations must
// return records in a stable order and must not hand out shared mutable state.
type RecommendationSource interface {
	Recommendations(ctx context.Context) ([]model.Recommendation, error)
	Recommendation(ctx context.Context, id string) (model.Recommendation, error)
}

// DefaultHorizon is the return horizon of the built-in catalog.
const DefaultHorizon = "24 hours"

// defaultCatalog is the built-in recommendation list. The sqlite seed migration
// carries the same rows.
var defaultCatalog = []model.Recommendation{
	{
		ID:             "7f0c2b8e-3a51-4c1e-9b7d-2f4e6a8c0d11",
		Symbol:         "ALGO/USDT",
		Name:           "Algorand",
		CurrentPrice:   decimal.RequireFromString("0.284"),
		ExpectedReturn: decimal.RequireFromString("0.52"),
		Confidence:     decimal.RequireFromString("95.0"),
		Allocation:     decimal.RequireFromString("20.0"),
		Horizon:        DefaultHorizon,
		Rationale:      "Strong positive sentiment (+1.389) detected. RSI at optimal levels with bullish momentum indicators.",
	},
	{
		ID:             "3c9d5e21-8b47-4f6a-a0c2-5d1e7b9f3a22",
		Symbol:         "UNI/USDT",
		Name:           "Uniswap",
		CurrentPrice:   decimal.RequireFromString("9.24"),
		ExpectedReturn: decimal.RequireFromString("0.35"),
		Confidence:     decimal.RequireFromString("95.0"),
		Allocation:     decimal.RequireFromString("20.0"),
		Horizon:        DefaultHorizon,
		Rationale:      "DeFi sector growth signals. MACD indicates upward trend continuation with strong volume support.",
	},
	{
		ID:             "a1e4f7b3-6c28-4d95-8e0f-9b3a2c5d7e33",
		Symbol:         "BTC/USDT",
		Name:           "Bitcoin",
		CurrentPrice:   decimal.RequireFromString("118408.00"),
		ExpectedReturn: decimal.RequireFromString("0.15"),
		Confidence:     decimal.RequireFromString("95.0"),
		Allocation:     decimal.RequireFromString("15.0"),
		Horizon:        DefaultHorizon,
		Rationale:      "Market stability anchor. Conservative allocation for portfolio balance and risk management.",
	},
}

// DefaultCatalog returns a copy of the built-in recommendation list.
func DefaultCatalog() []model.Recommendation {
	return slices.Clone(defaultCatalog)
}

// StaticRecommendationSource serves a fixed, in-memory catalog. It is safe for
// concurrent use because the catalog is never modified after construction.
type StaticRecommendationSource struct {
	recs []model.Recommendation
}

// NewStaticRecommendationSource creates a source over recs. A nil slice selects
// the built-in catalog.
func NewStaticRecommendationSource(recs []model.Recommendation) *StaticRecommendationSource {
	if recs == nil {
		recs = defaultCatalog
	}
	return &StaticRecommendationSource{recs: slices.Clone(recs)}
}

// Recommendations returns a copy of the catalog in its original order.
func (s *StaticRecommendationSource) Recommendations(_ context.Context) ([]model.Recommendation, error) {
	return slices.Clone(s.recs), nil
}

// Recommendation returns the record with the given ID or ErrRecommendationNotFound.
func (s *StaticRecommendationSource) Recommendation(_ context.Context, id string) (model.Recommendation, error) {
	for _, r := range s.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Recommendation{}, fmt.Errorf("%w: %s", apperrors.ErrRecommendationNotFound, id)
}
