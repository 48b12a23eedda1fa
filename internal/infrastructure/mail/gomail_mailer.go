package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"equine_billing/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// GomailMailer sends mail with attachments over SMTP.
type GomailMailer struct {
	sender   sender
	from     string
	fromName string
}

var _ interfaces.IMailer = (*GomailMailer)(nil)

func NewGomailMailer(host string, port int, login, password, from, fromName string) *GomailMailer {
	dialer := gomail.NewDialer(host, port, login, password)
	dialer.TLSConfig = &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}
	return &GomailMailer{sender: dialer, from: from, fromName: fromName}
}

func (m *GomailMailer) Send(_ context.Context, mail interfaces.Mail) error {
	if err := m.sender.DialAndSend(m.message(mail)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *GomailMailer) message(mail interfaces.Mail) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", mail.To...)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	for _, a := range mail.Attachments {
		data := a.Data
		msg.Attach(a.FileName,
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}
	return msg
}
