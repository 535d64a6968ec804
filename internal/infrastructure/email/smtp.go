// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedconfig "studyhall/internal/shared/config"
)

// SMTPService sends verification codes and admin notifications.
type SMTPService struct {
	dialer *gomail.Dialer
	cfg    *sharedconfig.EmailConfig
}

func NewSMTPService(cfg *sharedconfig.EmailConfig) *SMTPService {
	return &SMTPService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		cfg:    cfg,
	}
}

// SendVerificationCode mails a one-time verification code.
func (s *SMTPService) SendVerificationCode(ctx context.Context, email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Your verification code is:</p>
		<p style="font-size:24px;font-weight:bold;letter-spacing:4px">%s</p>
		<p>It expires in 10 minutes. If you did not request it, ignore this email.</p>
	`, code))

	if err := s.send(ctx, m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// NotifyTicketCreated mails the support inbox about a new ticket.
func (s *SMTPService) NotifyTicketCreated(ctx context.Context, number, subject, category string) error {
	if s.cfg.AdminAddress == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", s.cfg.AdminAddress)
	m.SetHeader("Subject", fmt.Sprintf("New support ticket %s", number))
	m.SetBody("text/html", fmt.Sprintf(`
		<p>A new support ticket was opened.</p>
		<ul>
			<li>Number: %s</li>
			<li>Subject: %s</li>
			<li>Category: %s</li>
		</ul>
	`, number, subject, category))

	if err := s.send(ctx, m); err != nil {
		return fmt.Errorf("failed to send ticket notification: %w", err)
	}
	return nil
}

// send honors context cancellation around the blocking SMTP dial.
func (s *SMTPService) send(ctx context.Context, m *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
