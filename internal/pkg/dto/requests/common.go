package requests

type Pagination struct {
	Page     int `json:"page" validate:"omitempty,min=1"`
	PageSize int `json:"pageSize" validate:"omitempty,min=1,max=100"`
}
