package dto

type UserItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=3,max=100"`
	Email    string  `json:"email" binding:"required,email,max=100"`
	Password string  `json:"password" binding:"required,min=6,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=manager member"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Role  string `json:"role" binding:"required,oneof=manager member"`
}
