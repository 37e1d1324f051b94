package repositories

import (
	"database/sql"
	"errors"
	"log"

	"acuario/internal/models"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	ListPaginated(limit, offset int) ([]*models.Contact, error)
	Count() (int, error)
	GetByID(id int) (*models.Contact, error)
	UpdateState(id, stateID int) error
}

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &contactRepository{db: db}
}

// create_at и id_state_id заполняет БД (DEFAULT now() / начальный статус).
func (r *contactRepository) Create(contact *models.Contact) error {
	const query = `
		INSERT INTO contactos ("fullName", email, phone, msg)
		VALUES ($1, $2, $3, $4)
		RETURNING id, create_at, id_state_id
	`
	return r.db.QueryRow(query, contact.FullName, contact.Email, contact.Phone, contact.Message).
		Scan(&contact.ID, &contact.CreatedAt, &contact.StateID)
}

func (r *contactRepository) ListPaginated(limit, offset int) ([]*models.Contact, error) {
	const query = `
		SELECT id, "fullName", email, phone, msg, create_at, id_state_id
		FROM contactos
		ORDER BY create_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Message, &c.CreatedAt, &c.StateID); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *contactRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contactos`).Scan(&count)
	return count, err
}

func (r *contactRepository) GetByID(id int) (*models.Contact, error) {
	const query = `
		SELECT id, "fullName", email, phone, msg, create_at, id_state_id
		FROM contactos
		WHERE id = $1
	`
	c := &models.Contact{}
	err := r.db.QueryRow(query, id).
		Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Message, &c.CreatedAt, &c.StateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) UpdateState(id, stateID int) error {
	const query = `UPDATE contactos SET id_state_id = $1 WHERE id = $2`
	res, err := r.db.Exec(query, stateID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
