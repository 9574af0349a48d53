// Package mailer sends transactional email over authenticated SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/pkg/logger"
)

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOTPEmail delivers a login/verification code. Without SMTP credentials
// configured the code is logged instead, so local development works without
// a mail account.
func (m *Mailer) SendOTPEmail(to, code string) error {
	subject := "Email OTP - Helpo Services"
	body := fmt.Sprintf("Your Helpo Services OTP is: %s\r\n\r\nThis code is valid for 5 minutes.", code)
	return m.send(to, subject, body)
}

// SendLeadDigest notifies a vendor how many callback requests arrived in the
// last day.
func (m *Mailer) SendLeadDigest(to, businessName string, leadCount int) error {
	subject := "New callback requests - Helpo Services"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYou received %d new callback request(s) in the last 24 hours.\r\nLog in to your Helpo dashboard to view them.",
		businessName, leadCount,
	)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.cfg.Email == "" || m.cfg.Password == "" {
		logger.Info("[dev mode] SMTP not configured, logging mail instead", map[string]interface{}{
			"to":      to,
			"subject": subject,
		})
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.Email, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, m.cfg.Email, []string{to}, msg); err != nil {
		logger.Error("Failed to send email", err, map[string]interface{}{
			"to": to,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email sent", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
	return nil
}
