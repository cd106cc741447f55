package schemas

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	DivisionID string `json:"divisionId" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin user technician"`
	Phone      string `json:"phone"`
}

type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	DivisionID string `json:"divisionId" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin user technician"`
	Phone      string `json:"phone"`
}
