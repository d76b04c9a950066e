package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"propdesk-backend/internal/config"
	"propdesk-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailService{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendDocumentUploadLink(ctx context.Context, email, name, link string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your rental contract - documents required")

	body := fmt.Sprintf("Hello %s,\n\nYour rental contract has been approved by our office. To proceed, please upload the required documents using the link below:\n\n%s\n\nThe link is valid for 14 days.\n\nBest regards,\nThe PropDesk Team", name, link)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendApprovalNotification(ctx context.Context, email, name string, contractID int32, status domain.ContractStatus) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Contract #%d status update", contractID))

	body := fmt.Sprintf("Hello %s,\n\nThe status of your rental contract #%d has been updated to: %s.\n\nBest regards,\nThe PropDesk Team", name, contractID, status)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendChequeDueReminder(ctx context.Context, email, checkNumber, dueDate string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Upcoming cheque due date")

	body := fmt.Sprintf("Hello,\n\nA reminder that cheque %s for %.3f is due on %s.\n\nBest regards,\nThe PropDesk Team", checkNumber, amount, dueDate)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendStaleDraftNotice(ctx context.Context, email string, contractID int32, ageDays int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Draft contract #%d needs attention", contractID))

	body := fmt.Sprintf("Hello,\n\nContract #%d has been in draft for %d days without approval. Please review it or cancel it.\n\nBest regards,\nThe PropDesk Team", contractID, ageDays)
	m.SetBody("text/plain", body)

	return s.send(m)
}
