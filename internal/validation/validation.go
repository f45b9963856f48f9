package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ndewijer/CryptoShield-Backend/internal/apperrors"
	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// validate is safe for concurrent use and caches struct metadata after first use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // Registration only fails for an empty tag name
	v.RegisterValidation("risk_tolerance", func(fl validator.FieldLevel) bool {
		return model.RiskTolerance(fl.Field().String()).Valid()
	})
	//nolint:errcheck // Registration only fails for an empty tag name
	v.RegisterValidation("investment_goal", func(fl validator.FieldLevel) bool {
		return model.Goal(fl.Field().String()).Valid()
	})

	return v
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}
