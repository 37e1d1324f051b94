package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"acuario/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create вставляет пользователя с уже захешированным паролем.
// Нарушение уникальности email (23505) превращается в ErrEmailTaken —
// гонку двух одновременных регистраций закрывает сама БД.
func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users ("fullName", email, pass, id_rol_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id_user
	`
	err := r.db.QueryRow(q, user.FullName, user.Email, user.PasswordHash, user.RoleID).Scan(&user.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id_user, "fullName", email, pass, COALESCE(id_rol_id, 1)
		FROM users
		WHERE email = $1
	`
	u := &models.User{}
	err := r.db.QueryRow(q, email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.RoleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}
