package validation

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// CapitalBounds is the inclusive range accepted for the investment capital.
type CapitalBounds struct {
	Min int64
	Max int64
}

// ValidateInvestorProfile checks the capital against bounds and the enum fields
// against their allowed values. All problems are reported together in an *Error.
func ValidateInvestorProfile(p model.InvestorProfile, bounds CapitalBounds) error {
	errors := make(map[string]string)

	if err := fieldErrors(validate.Struct(p), errors); err != nil {
		return err
	}

	if p.Capital < bounds.Min || p.Capital > bounds.Max {
		errors["capital"] = fmt.Sprintf("capital must be between %s and %s",
			humanize.Comma(bounds.Min), humanize.Comma(bounds.Max))
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
