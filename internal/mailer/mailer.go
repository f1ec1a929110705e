// Package mailer sends the few notification emails the contest produces.
// Delivery is strictly best-effort: a failed send is logged and never bubbles
// up into the operation that triggered it.
package mailer

import (
	"log"
	"strconv"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/config"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	// Send delivers a plain-text mail. It never returns an error; failures
	// are logged so the primary operation is unaffected.
	Send(to, subject, body string)
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New returns a working mailer when SMTP is configured and a no-op one
// otherwise, so callers never need to check.
func New(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		return noopMailer{}
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) {
	if to == "" {
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("email to %s failed: %v", to, err)
	}
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, body string) {}
