package responses

type PatientDashboard struct {
	Profile       *PatientProfile `json:"profile"`
	Appointments  []Appointment   `json:"appointments"`
	Notifications []Notification  `json:"notifications"`
}

type DoctorDashboard struct {
	Profile           *DoctorProfile      `json:"profile"`
	TodayAppointments []Appointment       `json:"todayAppointments"`
	Availability      *DoctorAvailability `json:"availability,omitempty"`
	Notifications     []Notification      `json:"notifications"`
}

type ReceptionistDashboard struct {
	Profile           *ReceptionistProfile `json:"profile"`
	TodayAppointments []Appointment        `json:"todayAppointments"`
	Notifications     []Notification       `json:"notifications"`
}
