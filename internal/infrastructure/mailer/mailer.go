// Package mailer fournit l'implémentation SMTP du port d'envoi d'e-mails.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/pkg/config"
)

var _ notify.Sender = (*SMTPSender)(nil)

// SMTPSender envoie les e-mails via un relais SMTP (gomail). Chaque appel
// ouvre sa propre connexion: le volume est faible et le dispatcher absorbe
// déjà les échecs.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender construit l'expéditeur depuis la configuration SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send expédie un e-mail HTML au destinataire.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("envoi smtp: %w", err)
	}
	return nil
}
