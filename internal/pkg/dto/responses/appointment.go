package responses

type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}
