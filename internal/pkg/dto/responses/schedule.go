package responses

type AvailabilitySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DoctorAvailability struct {
	DoctorID string             `json:"doctorId"`
	Date     string             `json:"date"`
	Slots    []AvailabilitySlot `json:"slots"`
}
