package repositories

import (
	"database/sql"

	"acuario/internal/models"
)

type StateRepository interface {
	List() ([]*models.State, error)
}

type stateRepository struct {
	db *sql.DB
}

func NewStateRepository(db *sql.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) List() ([]*models.State, error) {
	rows, err := r.db.Query(`SELECT id, label FROM states ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.State
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.ID, &s.Label); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
