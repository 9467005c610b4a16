package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// Sender delivers a notification to a recipient. Delivery is best-effort
// from the caller's point of view.
type Sender interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// SMTPSender sends HTML mail over SMTP with PLAIN auth. net/smtp negotiates
// STARTTLS when the server advertises it.
type SMTPSender struct {
	Host     string
	Port     int
	Address  string
	Password string
}

func NewSMTPSender(host string, port int, address, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		Address:  address,
		Password: password,
	}
}

func (s *SMTPSender) Send(_ context.Context, recipient, subject, htmlBody string) error {
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n"+
		"MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.Address, recipient, subject, htmlBody)

	auth := smtp.PlainAuth("", s.Address, s.Password, s.Host)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	if err := smtp.SendMail(addr, auth, s.Address, []string{recipient}, []byte(message)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
