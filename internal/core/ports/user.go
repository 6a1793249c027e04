package ports

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uint64, in domain.UpdateUserInput) (domain.User, error)
	Delete(ctx context.Context, id uint64) error
	// EmailTaken reports whether another user (excluding excludeID) already
	// holds the address. Pass excludeID 0 on create.
	EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error)
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
}

type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uint64, in domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) (domain.User, error)
}

type AuthService interface {
	// Login returns the authenticated user and a signed bearer token.
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}
