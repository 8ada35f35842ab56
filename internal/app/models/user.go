package models

// Role determines which dashboard and backend scope a user may access.
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

// User is the summary the backend returns on login and embeds in profile
// records.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	CPF    string `json:"cpf,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   Role   `json:"role"`
	Status bool   `json:"status,omitempty"`
}
