package service

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/chrisarpong/TEIN-Registration/internals/configs"
)

// Sender delivers one email. Satisfied by Mailer; faked in tests.
type Sender interface {
	Send(recipient, subject, htmlBody string) error
}

// Mailer sends over SMTP with the credentials from Config.
type Mailer struct {
	host   string
	port   int
	user   string
	pass   string
	sender string
}

func NewMailer(cfg *configs.Config) *Mailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 465
	}
	return &Mailer{
		host:   cfg.SMTPHost,
		port:   port,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		sender: cfg.SMTPSender,
	}
}

func (m *Mailer) Send(recipient, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
