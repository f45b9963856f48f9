package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrRecommendationNotFound indicates that a recommendation with the given ID does not exist.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// Input validation errors are raised before any computation happens.
// They indicate that the caller must correct the request and resubmit it.
var (
	// ErrCapitalOutOfRange indicates that the capital is outside the configured bounds.
	ErrCapitalOutOfRange = errors.New("capital outside allowed range")

	// ErrInvalidRiskTolerance indicates an unknown risk tolerance value.
	ErrInvalidRiskTolerance = errors.New("invalid risk tolerance")

	// ErrInvalidGoal indicates an unknown investment goal value.
	ErrInvalidGoal = errors.New("invalid investment goal")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// Degenerate data errors are raised by the allocation calculator when its inputs
// cannot produce a meaningful result.
var (
	// ErrNonPositiveCapital indicates a capital of zero or less reached the calculator.
	ErrNonPositiveCapital = errors.New("capital must be positive")

	// ErrNoRecommendations indicates an empty recommendation list.
	ErrNoRecommendations = errors.New("recommendation list is empty")

	// ErrNegativeAllocation indicates a recommendation with an allocation below zero.
	ErrNegativeAllocation = errors.New("allocation cannot be negative")

	// ErrAllocationOutOfRange indicates a single allocation above 100 percent.
	ErrAllocationOutOfRange = errors.New("allocation cannot exceed 100 percent")

	// ErrInvalidStopLoss indicates a negative stop-loss percentage.
	ErrInvalidStopLoss = errors.New("stop loss cannot be negative")

	// ErrInvalidPrice indicates a recommendation whose current price is not positive.
	ErrInvalidPrice = errors.New("current price must be positive")

	// ErrConfidenceOutOfRange indicates a confidence outside [0,100].
	ErrConfidenceOutOfRange = errors.New("confidence must be between 0 and 100")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveRecommendations = errors.New("failed to retrieve recommendations")
	ErrFailedToRetrieveRecommendation  = errors.New("failed to retrieve recommendation")
	ErrFailedToComputeAllocation       = errors.New("failed to compute allocation")
	ErrFailedToGetVersionInfo          = errors.New("failed to get version information")
	ErrFailedToRenderDashboard         = errors.New("failed to render dashboard")
)
