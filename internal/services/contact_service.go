package services

import (
	"errors"
	"fmt"
	"log"

	"acuario/internal/models"
	"acuario/internal/repositories"
)

var ErrCaptchaFailed = errors.New("captcha verification failed")

type CaptchaVerifier interface {
	Verify(token string) (bool, error)
}

type ContactService struct {
	contacts repositories.ContactRepository
	captcha  CaptchaVerifier
	email    EmailService // nil, если SMTP не настроен
}

func NewContactService(contacts repositories.ContactRepository, captcha CaptchaVerifier, email EmailService) *ContactService {
	return &ContactService{contacts: contacts, captcha: captcha, email: email}
}

// Submit гейтит сохранение на проверке капчи: без успешного ответа
// siteverify в БД ничего не попадает. Ошибка сети/кривой ответ сервиса
// тоже считается отказом.
func (s *ContactService) Submit(contact *models.Contact, captchaToken string) error {
	ok, err := s.captcha.Verify(captchaToken)
	if err != nil {
		log.Printf("[contact][submit] captcha verify error: %v", err)
		return ErrCaptchaFailed
	}
	if !ok {
		return ErrCaptchaFailed
	}

	if err := s.contacts.Create(contact); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	// уведомление — best effort, сабмит из-за него не падает
	if s.email != nil {
		if err := s.email.SendLeadNotification(contact); err != nil {
			log.Printf("[contact][submit] lead notification failed: %v", err)
		}
	}
	return nil
}
