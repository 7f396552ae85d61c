package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/config"
)

// SMTPNotifier implementa ports.Notifier enviando email via SMTP
type SMTPNotifier struct {
	dialer    *gomail.Dialer
	fromName  string
	fromAddr  string
	recipient string
}

var _ ports.Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier cria um novo SMTPNotifier
func NewSMTPNotifier(cfg *config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		fromName:  cfg.FromName,
		fromAddr:  cfg.User,
		recipient: cfg.Recipient,
	}
}

// NotifyNewApplication envia o aviso de nova candidatura para a equipe
func (n *SMTPNotifier) NotifyNewApplication(_ context.Context, influencer *entities.Influencer) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.fromAddr, n.fromName))
	m.SetHeader("To", n.recipient)
	m.SetHeader("Subject", fmt.Sprintf("Nova candidatura GM Faces: %s", influencer.Name))
	m.SetBody("text/html", applicationEmailBody(influencer))

	return n.dialer.DialAndSend(m)
}
