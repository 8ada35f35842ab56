package utils

import (
	"strings"

	"safeclinic-web/internal/pkg/dto/requests"
)

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.CPF = OnlyDigits(input.CPF)
	input.Phone = OnlyDigits(input.Phone)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
}

func SanitizeRegisterDoctorRequest(input *requests.RegisterDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.CPF = OnlyDigits(input.CPF)
	input.Phone = OnlyDigits(input.Phone)
	input.CRM = strings.TrimSpace(strings.ToUpper(input.CRM))
	input.Speciality = strings.TrimSpace(input.Speciality)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
}

func SanitizeRegisterReceptionistRequest(input *requests.RegisterReceptionist) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.CPF = OnlyDigits(input.CPF)
	input.Phone = OnlyDigits(input.Phone)
	input.WorkShift = strings.TrimSpace(input.WorkShift)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
}

func SanitizeUpdatePatientProfileRequest(input *requests.UpdatePatientProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = OnlyDigits(input.Phone)
}

func SanitizeUpdateDoctorProfileRequest(input *requests.UpdateDoctorProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = OnlyDigits(input.Phone)
	input.Speciality = strings.TrimSpace(input.Speciality)
}

func SanitizeUpdateReceptionistProfileRequest(input *requests.UpdateReceptionistProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = OnlyDigits(input.Phone)
	input.WorkShift = strings.TrimSpace(input.WorkShift)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Type = strings.TrimSpace(input.Type)
	input.Notes = strings.TrimSpace(input.Notes)
}
