package notification

import (
	"context"
	"fmt"

	"skibook/models"

	"gopkg.in/gomail.v2"
)

const senderName = "Ski Instructor"

// MailService delivers booking emails. Both methods expect the booking to
// carry its populated session.
type MailService interface {
	// SendBookingConfirmation mails the customer in the booking's language.
	SendBookingConfirmation(ctx context.Context, booking *models.Booking) error
	// SendAdminAlert mails the operator's fixed-language notification.
	SendAdminAlert(ctx context.Context, booking *models.Booking) error
}

// MailConfig is the transporter configuration, resolved once at startup.
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	AdminAddr string
}

// DefaultMailService is the SMTP implementation.
type DefaultMailService struct {
	cfg    MailConfig
	dialer *gomail.Dialer
}

func NewDefaultMailService(cfg MailConfig) *DefaultMailService {
	return &DefaultMailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *DefaultMailService) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	subject, body, err := renderConfirmation(booking)
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}
	return s.send(booking.Email, subject, body)
}

func (s *DefaultMailService) SendAdminAlert(ctx context.Context, booking *models.Booking) error {
	subject, body, err := renderAdminAlert(booking)
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}
	return s.send(s.cfg.AdminAddr, subject, body)
}

func (s *DefaultMailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
