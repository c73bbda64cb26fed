package services

import (
	"MovingList/internal/config"
	"bytes"
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"html/template"
	"net/smtp"
	"strings"
)

type MailService interface {
	SendLoginLink(ctx context.Context, to, link string) error
}

// NewMailService sends through SMTP when it is configured and otherwise
// logs the link, which is enough for a single-user install.
func NewMailService(configuration *config.Configuration, logService LogService) MailService {
	smtpConfig := configuration.SMTP
	if smtpConfig.Host == "" || smtpConfig.From == "" {
		return &logMailService{log: logService.Log}
	}
	return &smtpMailService{
		config: smtpConfig,
		server: smtpConfig.Host + ":" + smtpConfig.Port,
		auth:   smtp.PlainAuth("", smtpConfig.Username, smtpConfig.Password, smtpConfig.Host),
		send:   smtp.SendMail,
	}
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailService struct {
	config config.SMTPConfig
	server string
	auth   smtp.Auth
	send   sendMailFunc
}

type loginLinkData struct {
	AppName string
	Link    string
}

func (s *smtpMailService) SendLoginLink(ctx context.Context, to, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := renderTemplate(loginLinkTemplate, loginLinkData{AppName: s.config.FromName, Link: link})
	if err != nil {
		return fmt.Errorf("render login link: %w", err)
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: Your %s sign-in link\r\n", s.config.FromName)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	msg.WriteString(body)

	if err := s.send(s.server, s.auth, s.config.From, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("send login link: %w", err)
	}
	return nil
}

type logMailService struct {
	log *logrus.Logger
}

func (s *logMailService) SendLoginLink(_ context.Context, to, link string) error {
	s.log.WithFields(logrus.Fields{
		"to":   to,
		"link": link,
	}).Info("smtp not configured, login link not mailed")
	return nil
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const loginLinkTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.6; color: #333;">
    <h1>{{.AppName}}</h1>
    <p>Click the link below to sign in to your moving boxes.</p>
    <p><a href="{{.Link}}">Sign in</a></p>
    <p>If you didn't ask to sign in, you can ignore this email.</p>
</body>
</html>`
