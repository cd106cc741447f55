package schemas

type CreateDivisionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateDivisionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
