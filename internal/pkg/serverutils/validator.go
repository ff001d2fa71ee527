package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"escapedesk-be/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into a
// single validation error listing the offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.Validation("invalid request payload")
		}

		var fields []string
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return apperrors.Validation("validation failed: " + strings.Join(fields, ", "))
	}
	return nil
}
