package requests

// PatientID is optional on input: patients always book for themselves and
// the field is filled from the session. Receptionists must supply it.
type CreateAppointment struct {
	PatientID string `json:"patientId" validate:"omitempty"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Type      string `json:"type" validate:"required,appointment_type"`
	Notes     string `json:"notes" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}

type AppointmentFilter struct {
	Status string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
