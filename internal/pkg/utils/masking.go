package utils

import (
	"fmt"
	"strings"
	"unicode"

	"safeclinic-web/internal/pkg/constvars"
)

// OnlyDigits strips every non-digit rune. Masked documents and phone
// numbers always travel to the backend in digit-only form.
func OnlyDigits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCPF formats an 11-digit CPF as 123.456.789-00. Inputs of any other
// length come back unchanged.
func MaskCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) != constvars.CPFDigitsLength {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// MaskPhone formats a Brazilian phone as (11) 98765-4321 for 11 digits or
// (11) 8765-4321 for 10. Anything else comes back unchanged.
func MaskPhone(phone string) string {
	digits := OnlyDigits(phone)
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	default:
		return phone
	}
}
