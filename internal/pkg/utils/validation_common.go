package utils

import (
	"errors"
	"fmt"
	"strings"

	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

// ValidateRequest validates the struct and converts the first violation
// into a CustomError carrying a pt-BR message for the form.
func ValidateRequest(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		message, ok := constvars.CustomValidationErrorMessages[first.Tag()]
		if !ok {
			message = "é inválido"
		}
		if strings.Contains(message, "%s") {
			message = fmt.Sprintf(message, first.Param())
		}
		return exceptions.ErrInputValidation(err, fmt.Sprintf("%s %s", first.Field(), message))
	}

	return exceptions.ErrInputValidation(err, constvars.ErrClientCannotProcessRequest)
}
