package utils

import (
	"testing"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func validRegisterPatient() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Name:           "Maria Souza",
		Email:          "maria@example.com",
		CPF:            "12345678900",
		Phone:          "11987654321",
		BirthDate:      "1990-04-12",
		Password:       "Sup3rSenha!",
		RetypePassword: "Sup3rSenha!",
	}
}

func TestValidateRequest_RegisterPatient(t *testing.T) {
	t.Run("Valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(validRegisterPatient()))
	})

	t.Run("CPF with mask characters fails", func(t *testing.T) {
		request := validRegisterPatient()
		request.CPF = "123.456.789-00"
		err := ValidateRequest(request)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	})

	t.Run("Short phone fails", func(t *testing.T) {
		request := validRegisterPatient()
		request.Phone = "119876"
		assert.Error(t, ValidateRequest(request))
	})

	t.Run("Weak password fails", func(t *testing.T) {
		request := validRegisterPatient()
		request.Password = "senha123"
		request.RetypePassword = "senha123"
		assert.Error(t, ValidateRequest(request))
	})

	t.Run("Mismatched retype fails", func(t *testing.T) {
		request := validRegisterPatient()
		request.RetypePassword = "Outr4Senha!"
		assert.Error(t, ValidateRequest(request))
	})
}

func TestValidateRequest_RegisterDoctor(t *testing.T) {
	request := &requests.RegisterDoctor{
		Name:           "Dr. Carlos Lima",
		Email:          "carlos@example.com",
		CPF:            "98765432100",
		Phone:          "2133334444",
		CRM:            "123456/SP",
		Speciality:     "cardiologia",
		Password:       "Sup3rSenha!",
		RetypePassword: "Sup3rSenha!",
	}
	assert.NoError(t, ValidateRequest(request))

	request.CRM = "abc"
	assert.Error(t, ValidateRequest(request))
}

func TestValidateRequest_RegisterReceptionist(t *testing.T) {
	request := &requests.RegisterReceptionist{
		Name:           "Ana Paula",
		Email:          "ana@example.com",
		CPF:            "11122233344",
		Phone:          "11987654321",
		WorkShift:      "morning",
		Password:       "Sup3rSenha!",
		RetypePassword: "Sup3rSenha!",
	}
	assert.NoError(t, ValidateRequest(request))

	request.WorkShift = "overnight"
	assert.Error(t, ValidateRequest(request))
}

func TestValidateRequest_CreateAppointmentType(t *testing.T) {
	request := &requests.CreateAppointment{
		DoctorID: "doctor-1",
		Date:     "2026-09-01",
		Time:     "14:00",
		Type:     "online",
	}
	assert.NoError(t, ValidateRequest(request))

	request.Type = "in-person"
	assert.NoError(t, ValidateRequest(request))

	request.Type = "telepathy"
	err := ValidateRequest(request)
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
}

func TestSanitizeRegisterPatientRequest(t *testing.T) {
	request := &requests.RegisterPatient{
		Name:  "  Maria Souza ",
		Email: " Maria@Example.COM ",
		CPF:   "123.456.789-00",
		Phone: "(11) 98765-4321",
	}
	SanitizeRegisterPatientRequest(request)

	assert.Equal(t, "Maria Souza", request.Name)
	assert.Equal(t, "maria@example.com", request.Email)
	assert.Equal(t, "12345678900", request.CPF)
	assert.Equal(t, "11987654321", request.Phone)
}

func TestSanitizeRegisterDoctorRequest(t *testing.T) {
	request := &requests.RegisterDoctor{
		Email: "Carlos@Example.com",
		CPF:   "987.654.321-00",
		Phone: "(21) 3333-4444",
		CRM:   " 123456/sp ",
	}
	SanitizeRegisterDoctorRequest(request)

	assert.Equal(t, "carlos@example.com", request.Email)
	assert.Equal(t, "98765432100", request.CPF)
	assert.Equal(t, "2133334444", request.Phone)
	assert.Equal(t, "123456/SP", request.CRM)
}

func TestValidateRequest_LoginUser(t *testing.T) {
	assert.NoError(t, ValidateRequest(&requests.LoginUser{
		Email:    "maria@example.com",
		Password: "Sup3rSenha!",
	}))

	err := ValidateRequest(&requests.LoginUser{Email: "not-an-email", Password: "Sup3rSenha!"})
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
}
