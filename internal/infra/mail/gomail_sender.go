// Package mail implements the Mailer domain service over SMTP.
package mail

import (
	"bytes"
	"context"
	"html/template"

	"ishop/config"
	"ishop/internal/domain/service"
	"ishop/internal/errors"

	gomail "gopkg.in/gomail.v2"
)

var signUpTmpl = template.Must(template.New("signup").Parse(`
<p>Hi {{.FullName}},</p>
<p>Your iShop verification code is <strong>{{.Code}}</strong>.</p>
<p>It expires in 10 minutes.</p>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<p>Hi {{.FullName}},</p>
<p>Your iShop password reset code is <strong>{{.Code}}</strong>.</p>
<p>It expires in 10 minutes. If you did not request a reset, ignore this email.</p>
`))

type codeEmailData struct {
	FullName string
	Code     string
}

// smtpMailer delivers one-time codes over SMTP using gomail.
type smtpMailer struct {
	cfg *config.SMTPConfig
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &smtpMailer{cfg: cfg.SMTP}, nil
}

// SendSignUpCode delivers the plaintext sign-up verification code.
func (m *smtpMailer) SendSignUpCode(ctx context.Context, to, fullName, code string) error {
	return m.send(to, "Verify your iShop account", signUpTmpl, codeEmailData{FullName: fullName, Code: code})
}

// SendPasswordResetCode delivers the plaintext password reset code.
func (m *smtpMailer) SendPasswordResetCode(ctx context.Context, to, fullName, code string) error {
	return m.send(to, "Your iShop password reset code", resetTmpl, codeEmailData{FullName: fullName, Code: code})
}

func (m *smtpMailer) send(to, subject string, tmpl *template.Template, data codeEmailData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrap(err, "render email body")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send email")
	}

	return nil
}
