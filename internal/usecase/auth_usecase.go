package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Role         string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
}

type Auth struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (s *Auth) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return LoginResult{}, ErrInternal
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{AccessToken: access, RefreshToken: refresh, Role: u.Role}, nil
}
