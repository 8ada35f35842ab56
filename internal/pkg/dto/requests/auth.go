package requests

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterPatient struct {
	Name           string `json:"name" validate:"required,min=3,max=120"`
	Email          string `json:"email" validate:"required,email"`
	CPF            string `json:"cpf" validate:"required,cpf"`
	Phone          string `json:"phone" validate:"required,phone_br"`
	BirthDate      string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retypePassword" validate:"required,eqfield=Password"`
}

type RegisterDoctor struct {
	Name           string `json:"name" validate:"required,min=3,max=120"`
	Email          string `json:"email" validate:"required,email"`
	CPF            string `json:"cpf" validate:"required,cpf"`
	Phone          string `json:"phone" validate:"required,phone_br"`
	CRM            string `json:"crm" validate:"required,crm"`
	Speciality     string `json:"speciality" validate:"required"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retypePassword" validate:"required,eqfield=Password"`
}

type RegisterReceptionist struct {
	Name           string `json:"name" validate:"required,min=3,max=120"`
	Email          string `json:"email" validate:"required,email"`
	CPF            string `json:"cpf" validate:"required,cpf"`
	Phone          string `json:"phone" validate:"required,phone_br"`
	WorkShift      string `json:"workShift" validate:"required,work_shift"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retypePassword" validate:"required,eqfield=Password"`
}
