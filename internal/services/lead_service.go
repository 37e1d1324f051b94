package services

import (
	"acuario/internal/models"
	"acuario/internal/repositories"
)

type LeadService struct {
	contacts repositories.ContactRepository
	states   repositories.StateRepository
}

func NewLeadService(contacts repositories.ContactRepository, states repositories.StateRepository) *LeadService {
	return &LeadService{contacts: contacts, states: states}
}

// List отдаёт страницу лидов (свежие первыми) и метаданные пагинации.
func (s *LeadService) List(page, limit int) ([]*models.Contact, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	leads, err := s.contacts.ListPaginated(limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if leads == nil {
		leads = []*models.Contact{}
	}

	total, err := s.contacts.Count()
	if err != nil {
		return nil, nil, err
	}

	return leads, &models.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (s *LeadService) GetByID(id int) (*models.Contact, error) {
	return s.contacts.GetByID(id)
}

func (s *LeadService) UpdateState(id, stateID int) error {
	return s.contacts.UpdateState(id, stateID)
}

func (s *LeadService) States() ([]*models.State, error) {
	states, err := s.states.List()
	if err != nil {
		return nil, err
	}
	if states == nil {
		states = []*models.State{}
	}
	return states, nil
}
