package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

const bcryptCost = 10

type UserService struct {
	users ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) CreateUser(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	role := params.Role
	if role == "" {
		role = domain.RoleMember
	}

	taken, err := s.users.EmailTaken(ctx, params.Email, 0)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.users.Create(ctx, domain.CreateUserInput{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, in domain.UpdateUserInput) (domain.User, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return domain.User{}, err
	}

	taken, err := s.users.EmailTaken(ctx, in.Email, id)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	return s.users.Update(ctx, id, in)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) (domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return domain.User{}, err
	}
	return existing, nil
}
