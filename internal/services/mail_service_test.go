package services

import (
	"MovingList/internal/config"
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailService_FallsBackToLog(t *testing.T) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(&out)

	mailService := NewMailService(config.Default(), LogService{Log: log})
	err := mailService.SendLoginLink(context.Background(), "owner@example.com", "http://localhost/?token=abc")

	require.NoError(t, err)
	assert.IsType(t, &logMailService{}, mailService)
	assert.Contains(t, out.String(), "token=abc")
}

func TestSMTPMailService_SendLoginLink(t *testing.T) {
	var (
		gotAddr string
		gotTo   []string
		gotMsg  []byte
	)
	mailService := &smtpMailService{
		config: config.SMTPConfig{Host: "mail.example.com", Port: "587", From: "noreply@example.com", FromName: "Moving List"},
		server: "mail.example.com:587",
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, msg
			return nil
		},
	}

	err := mailService.SendLoginLink(context.Background(), "owner@example.com", "http://localhost/?token=abc")

	require.NoError(t, err)
	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "From: Moving List <noreply@example.com>")
	assert.Contains(t, string(gotMsg), `href="http://localhost/?token=abc"`)
}

func TestSMTPMailService_SendFailure(t *testing.T) {
	mailService := &smtpMailService{
		config: config.SMTPConfig{From: "noreply@example.com"},
		send: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		},
	}

	err := mailService.SendLoginLink(context.Background(), "owner@example.com", "http://localhost/?token=abc")

	assert.ErrorContains(t, err, "connection refused")
}
