package responses

type DoctorProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	Phone      string `json:"phone"`
	CRM        string `json:"crm"`
	Speciality string `json:"speciality"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

type DoctorSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CRM        string `json:"crm"`
	Speciality string `json:"speciality"`
}

type Speciality struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
