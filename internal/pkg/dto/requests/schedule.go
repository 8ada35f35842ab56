package requests

type AvailabilityQuery struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreateSchedule struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime      string `json:"endTime" validate:"required,datetime=15:04"`
	SlotDuration int    `json:"slotDurationInMinutes" validate:"omitempty,min=10,max=120"`
}

type BlockSlot struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}
