package service

import (
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"parket-portal/pkg/config"

	"go.uber.org/zap"
)

// MailService delivers order notifications to the sales manager mailbox.
type MailService struct {
	config *config.SMTPConfig
	logger *zap.Logger
}

func NewMailService(cfg *config.SMTPConfig, logger *zap.Logger) *MailService {
	return &MailService{config: cfg, logger: logger}
}

// Send delivers a plain-text message. Subjects are Q-encoded so Cyrillic
// survives the SMTP headers.
func (s *MailService) Send(to, subject, body string) error {
	addr := net.JoinHostPort(s.config.Host, s.config.Port)

	var msg strings.Builder
	msg.WriteString("From: " + s.config.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.config.User != "" {
		auth = smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.logger.Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NotifyManager sends to the configured manager address.
func (s *MailService) NotifyManager(subject, body string) error {
	if s.config.ManagerEmail == "" {
		s.logger.Warn("Manager email is not configured, skipping notification")
		return nil
	}
	return s.Send(s.config.ManagerEmail, subject, body)
}
