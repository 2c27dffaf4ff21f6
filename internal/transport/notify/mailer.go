package notify

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer отправляет письма через внешний SMTP сервер (gmail в оригинальном деплое).
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	// gomail не умеет контексты, поэтому хотя бы не начинаем отправку по отмененному.
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "sending mail")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)
	if len(mail.Attachment) > 0 {
		msg.Attach(mail.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(mail.Attachment))
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "sending mail to %s", mail.To)
	}
	return nil
}
