package requests

type UpdatePatientProfile struct {
	Name  string `json:"name" validate:"omitempty,min=3,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone_br"`
}

type UpdateDoctorProfile struct {
	Name       string `json:"name" validate:"omitempty,min=3,max=120"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,phone_br"`
	Speciality string `json:"speciality" validate:"omitempty"`
}

type UpdateReceptionistProfile struct {
	Name      string `json:"name" validate:"omitempty,min=3,max=120"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,phone_br"`
	WorkShift string `json:"workShift" validate:"omitempty,work_shift"`
}
