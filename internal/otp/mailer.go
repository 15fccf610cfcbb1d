package otp

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock

// Mailer delivers a generated code to its destination address.
type Mailer interface {
	SendCode(to, code string) error
}

// SMTPMailer sends codes through the configured SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}
	return &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

func (m *SMTPMailer) SendCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "OTP Verification")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP Code: %s", code))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return apperror.Wrap(err, apperror.CodeDeliveryFailed,
			"Could not deliver the verification code", http.StatusInternalServerError)
	}
	return nil
}
