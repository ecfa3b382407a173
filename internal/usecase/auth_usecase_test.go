package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	user repository.User
	err  error
}

func (m mockUserRepo) FindByEmail(context.Context, string) (repository.User, error) {
	return m.user, m.err
}

func testTokenService() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	userID := uuid.New()

	uc := NewAuthUsecase(mockUserRepo{user: repository.User{
		ID:           userID,
		Email:        "hire@acme.io",
		PasswordHash: string(hash),
		Role:         jwt.RoleEmployer,
	}}, testTokenService())

	res, err := uc.Login(context.Background(), LoginInput{Email: "Hire@Acme.io", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatalf("expected tokens, got %+v", res)
	}
	if res.Role != jwt.RoleEmployer {
		t.Fatalf("expected employer role, got %q", res.Role)
	}

	claims, err := testTokenService().ValidateToken(res.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected subject %s, got %s", userID, claims.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	uc := NewAuthUsecase(mockUserRepo{user: repository.User{
		ID:           uuid.New(),
		Email:        "hire@acme.io",
		PasswordHash: string(hash),
		Role:         jwt.RoleEmployer,
	}}, testTokenService())

	_, err = uc.Login(context.Background(), LoginInput{Email: "hire@acme.io", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := NewAuthUsecase(mockUserRepo{err: repository.ErrUserNotFound}, testTokenService())

	_, err := uc.Login(context.Background(), LoginInput{Email: "ghost@acme.io", Password: "s3cret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmptyInput(t *testing.T) {
	uc := NewAuthUsecase(mockUserRepo{}, testTokenService())

	_, err := uc.Login(context.Background(), LoginInput{})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
