// Package mail provides the SMTP implementation of the domain MailSender.
package mail

import (
	"gopkg.in/gomail.v2"

	"hostelhub/config"
	"hostelhub/internal/domain/service"
	"hostelhub/internal/errors"
)

// gomailSender sends plain-text mail over SMTP. Each Send dials a fresh
// connection; the platform's mail volume is a handful of verification codes,
// not a queue worth pooling for.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender is the constructor for gomailSender.
func NewGomailSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &gomailSender{dialer: dialer, from: from}, nil
}

// Send dispatches one message. A nil return means the SMTP server accepted it.
func (s *gomailSender) Send(to, subject, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
