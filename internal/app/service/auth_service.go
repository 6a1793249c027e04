package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
	"github.com/ardipermana59/hbus/pkg/authtoken"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	users     ports.UserRepository
	jwtSecret []byte
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	token, err := authtoken.Sign(s.jwtSecret, user.ID, user.Email, string(user.Role), tokenTTL)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}
