package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"workhub_backend/internal/config"
)

// Mailer sends transactional mail over SMTP. A nil Mailer (email
// disabled in config) is handled by the callers, not here.
type Mailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewMailer returns nil when email is disabled, which callers treat as
// "skip notifications".
func NewMailer(cfg *config.Config) *Mailer {
	if !cfg.Email.Enabled {
		return nil
	}
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// SendPaymentSettled notifies the payer of the admin decision.
func (m *Mailer) SendPaymentSettled(to, name, status string, amount float64) error {
	subject := "Your payment has been reviewed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour payment of %.0f has been %s.\n\nIf you have questions, just reply to this email.",
		name, amount, status)
	return m.send(to, subject, body)
}

// SendBusinessReviewed notifies the owner of the approval decision.
func (m *Mailer) SendBusinessReviewed(to, name, businessName, status string) error {
	subject := fmt.Sprintf("Your business %q has been reviewed", businessName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour business %q is now %s.",
		name, businessName, status)
	return m.send(to, subject, body)
}
