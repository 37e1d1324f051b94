package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"acuario/internal/models"
)

type EmailService interface {
	SendLeadNotification(contact *models.Contact) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, ownerEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
		to:     ownerEmail,
	}
}

func (s *emailService) SendLeadNotification(contact *models.Contact) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo lead: %s", contact.FullName))

	body := fmt.Sprintf(`
		<h2>Nuevo mensaje de contacto</h2>
		<p><strong>Nombre:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Teléfono:</strong> %s</p>
		<p><strong>Mensaje:</strong></p>
		<p>%s</p>
	`, contact.FullName, contact.Email, contact.Phone, contact.Message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}
	return nil
}
