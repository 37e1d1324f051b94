package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"acuario/internal/models"
	"acuario/internal/repositories"
)

type memUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (m *memUserRepo) Create(u *models.User) error {
	if _, ok := m.users[u.Email]; ok {
		return repositories.ErrEmailTaken
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) EmailExists(email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newMemUserRepo()
	s := NewAuthService(repo)

	u, err := s.Register("Gael", "gael@example.com", "contraseña1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "contraseña1" {
		t.Fatal("password stored in plaintext")
	}
	if cost, err := bcrypt.Cost([]byte(u.PasswordHash)); err != nil || cost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d (err=%v)", cost, err)
	}

	got, err := s.Login("gael@example.com", "contraseña1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("login returned wrong user: %d vs %d", got.ID, u.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	s := NewAuthService(repo)

	if _, err := s.Register("Uno", "dup@example.com", "clave123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register("Dos", "dup@example.com", "clave456")
	if !errors.Is(err, repositories.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("second row created: %d users", len(repo.users))
	}
}

// Обе ошибки входа неразличимы для вызывающего.
func TestLogin_IndistinguishableFailures(t *testing.T) {
	repo := newMemUserRepo()
	s := NewAuthService(repo)
	if _, err := s.Register("Gael", "gael@example.com", "correcta1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, badPass := s.Login("gael@example.com", "incorrecta")
	_, noUser := s.Login("nadie@example.com", "cualquiera")

	if !errors.Is(badPass, ErrInvalidCredentials) || !errors.Is(noUser, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", badPass, noUser)
	}
}
