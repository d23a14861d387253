package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Admin, error)
	// Principal заново проверяет, что владелец токена всё ещё администратор.
	Principal(ctx context.Context, adminID string) (models.Principal, error)
}

// BcryptCost - стоимость хеширования паролей администраторов.
const BcryptCost = 12

const minPasswordLength = 8

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Admin, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrAuthInvalidCredentials
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	admin.PasswordHash = ""
	return admin, nil
}

func (s *authService) Principal(ctx context.Context, adminID string) (models.Principal, error) {
	if adminID == "" {
		return models.Principal{}, ErrAuthenticationFailed
	}
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return models.Principal{}, ErrForbiddenOperation
		}
		return models.Principal{}, fmt.Errorf("failed to load admin %s: %w", adminID, err)
	}
	return models.Principal{AdminID: admin.ID, Email: admin.Email, Role: models.RoleAdmin}, nil
}

// HashPassword хеширует пароль для новой записи в таблице admins.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidationFailed, minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
