package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/logging"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
	"github.com/ndewijer/CryptoShield-Backend/internal/validation"
)

// CashReserveLabel is the chart label of the unallocated share of capital.
const CashReserveLabel = "Cash Reserve"

// AllocationService turns an investor profile into the dashboard analysis.
// It holds no per-request state and is safe for concurrent use.
type AllocationService struct {
	source RecommendationSource
	cfg    config.AllocationConfig
	log    zerolog.Logger
}

// NewAllocationService creates a new AllocationService reading recommendations from source.
func NewAllocationService(source RecommendationSource, cfg config.AllocationConfig, log zerolog.Logger) *AllocationService {
	return &AllocationService{
		source: source,
		cfg:    cfg,
		log:    logging.Component(log, "allocation"),
	}
}

// ProfileOptions describes the accepted investor profile inputs.
type ProfileOptions struct {
	RiskTolerances []model.RiskTolerance
	Goals          []model.Goal
	CapitalMin     int64
	CapitalMax     int64
	CapitalDefault int64
	CapitalStep    int64
	Default        model.InvestorProfile
}

// ProfileOptions returns the enums and capital bounds the inputs are validated against.
func (s *AllocationService) ProfileOptions() ProfileOptions {
	return ProfileOptions{
		RiskTolerances: model.RiskTolerances,
		Goals:          model.Goals,
		CapitalMin:     s.cfg.CapitalMin,
		CapitalMax:     s.cfg.CapitalMax,
		CapitalDefault: s.cfg.CapitalDefault,
		CapitalStep:    s.cfg.CapitalStep,
		Default:        s.DefaultProfile(),
	}
}

// DefaultProfile returns the profile shown before the user changes anything.
func (s *AllocationService) DefaultProfile() model.InvestorProfile {
	return model.InvestorProfile{
		Capital:       s.cfg.CapitalDefault,
		RiskTolerance: model.RiskConservative,
		Goal:          model.GoalProtectAgainstInflation,
	}
}

// Recommendations returns the current catalog.
func (s *AllocationService) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.source.Recommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveRecommendations, err)
	}
	return recs, nil
}

// Recommendation returns a single catalog entry.
func (s *AllocationService) Recommendation(ctx context.Context, id string) (model.Recommendation, error) {
	rec, err := s.source.Recommendation(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecommendationNotFound) {
			return model.Recommendation{}, err
		}
		return model.Recommendation{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveRecommendation, err)
	}
	return rec, nil
}

// Analyze validates the profile, computes the allocation over the current catalog
// and adds the currency conversion and market comparison figures.
//
// Errors:
//   - *validation.Error when the profile is invalid (nothing is computed)
//   - ErrFailedToRetrieveRecommendations when the source fails
//   - degenerate data errors (ErrNoRecommendations, ErrNegativeAllocation, ...) for a bad catalog
func (s *AllocationService) Analyze(ctx context.Context, profile model.InvestorProfile) (model.Analysis, error) {
	bounds := validation.CapitalBounds{Min: s.cfg.CapitalMin, Max: s.cfg.CapitalMax}
	if err := validation.ValidateInvestorProfile(profile, bounds); err != nil {
		return model.Analysis{}, err
	}

	recs, err := s.Recommendations(ctx)
	if err != nil {
		return model.Analysis{}, err
	}
	if err := validation.ValidateRecommendations(recs); err != nil {
		s.log.Error().Err(err).Msg("recommendation catalog rejected")
		return model.Analysis{}, err
	}

	capital := decimal.NewFromInt(profile.Capital)
	alloc, err := ComputeAllocation(AllocationInput{
		Capital:         capital,
		Recommendations: recs,
		StopLossPercent: s.cfg.StopLossPercent,
	})
	if err != nil {
		return model.Analysis{}, err
	}

	if alloc.Summary.OverAllocated {
		s.log.Warn().
			Str("total_allocated", alloc.Summary.TotalAllocatedPercent.String()).
			Msg("recommendation allocations exceed 100 percent; cash reserve is negative")
	}

	s.log.Debug().
		Int64("capital", profile.Capital).
		Str("risk_tolerance", string(profile.RiskTolerance)).
		Str("goal", string(profile.Goal)).
		Str("weighted_return", alloc.Summary.WeightedReturnPercent.String()).
		Msg("allocation computed")

	return model.Analysis{
		Profile:            profile,
		Allocation:         alloc,
		USDRate:            s.cfg.USDRate,
		CapitalUSD:         capital.Div(s.cfg.USDRate),
		MaxRiskPerTrade:    capital.Mul(s.cfg.PositionLimitPercent).Div(hundred),
		PositionLimit:      s.cfg.PositionLimitPercent,
		HeadlineConfidence: headlineConfidence(recs),
		Market: model.MarketComparison{
			MarketAverageReturn: s.cfg.MarketAverageReturn,
			Outperformance:      alloc.Summary.WeightedReturnPercent.Sub(s.cfg.MarketAverageReturn),
		},
		Chart: chartSlices(alloc),
	}, nil
}

// headlineConfidence is the lowest confidence in the catalog, so the headline
// never overstates any single recommendation. recs must be non-empty.
func headlineConfidence(recs []model.Recommendation) decimal.Decimal {
	lowest := recs[0].Confidence
	for _, r := range recs[1:] {
		lowest = decimal.Min(lowest, r.Confidence)
	}
	return lowest
}

func chartSlices(alloc model.Allocation) []model.ChartSlice {
	out := make([]model.ChartSlice, 0, len(alloc.Breakdowns)+1)
	for _, b := range alloc.Breakdowns {
		out = append(out, model.ChartSlice{
			Label:   b.Recommendation.Name,
			Percent: b.Recommendation.Allocation,
		})
	}
	return append(out, model.ChartSlice{
		Label:   CashReserveLabel,
		Percent: alloc.Summary.CashReservePercent,
	})
}
