package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"acuario/internal/authz"
	"acuario/internal/models"
	"acuario/internal/repositories"
)

// ErrInvalidCredentials — единый ответ и на неизвестный email, и на
// неверный пароль, чтобы нельзя было перебирать аккаунты.
var ErrInvalidCredentials = errors.New("invalid email or password")

const bcryptCost = 10

type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(fullName, email, pass string) (*models.User, error) {
	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, repositories.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       authz.RoleUser,
	}
	// Create может вернуть ErrEmailTaken, если кто-то успел между
	// проверкой и вставкой — уникальный индекс в БД решающий.
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, pass string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(pass)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
