package utils

import (
	"regexp"

	"safeclinic-web/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("phone_br", validatePhoneBR)
	validate.RegisterValidation("crm", validateCRM)
	validate.RegisterValidation("work_shift", validateWorkShift)
	validate.RegisterValidation("appointment_type", validateAppointmentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

// validateCPF runs on the sanitized, digit-only value.
func validateCPF(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexCPFDigits).MatchString(fl.Field().String())
}

func validatePhoneBR(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexBrazilPhoneDigits).MatchString(fl.Field().String())
}

func validateCRM(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexCRM).MatchString(fl.Field().String())
}

func validateWorkShift(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.WorkShiftMorning, constvars.WorkShiftAfternoon, constvars.WorkShiftNight:
		return true
	}
	return false
}

func validateAppointmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AppointmentTypeOnline, constvars.AppointmentTypeInPerson:
		return true
	}
	return false
}
