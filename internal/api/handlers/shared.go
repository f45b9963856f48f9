package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/CryptoShield-Backend/internal/api/response"
	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// maxBodyBytes bounds request bodies read by parseJSON.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

// degenerateDataErrors are raised when the recommendation catalog itself is unusable.
var degenerateDataErrors = []error{
	apperrors.ErrNonPositiveCapital,
	apperrors.ErrNoRecommendations,
	apperrors.ErrNegativeAllocation,
	apperrors.ErrAllocationOutOfRange,
	apperrors.ErrInvalidStopLoss,
	apperrors.ErrInvalidPrice,
	apperrors.ErrConfidenceOutOfRange,
}

// statusFor maps a service error onto an HTTP status code.
//
//   - *validation.Error: 400
//   - ErrRecommendationNotFound: 404
//   - degenerate catalog data: 422
//   - anything else: 500
func statusFor(err error) int {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, apperrors.ErrRecommendationNotFound) {
		return http.StatusNotFound
	}
	for _, target := range degenerateDataErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// respondServiceError writes err using the standard error envelope. Validation
// errors carry their field map as details.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.RespondError(w, status, "validation failed", verr.Fields)
	case status == http.StatusInternalServerError:
		log.Error().Err(err).Msg(message)
		response.RespondError(w, status, message, err.Error())
	default:
		response.RespondError(w, status, message, err.Error())
	}
}
