// Package email delivers transactional mail: welcome on registration,
// password reset links, and appointment status notifications.
package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/aykutolcay94-gif/buildestate/models"
)

var ErrNotConfigured = errors.New("e-posta yapılandırması eksik")

type Mailer interface {
	SendWelcome(to, name string) error
	SendPasswordReset(to, resetURL string) error
	SendAppointmentStatus(to string, view *models.AppointmentView) error
}

// SMTPMailer sends through the configured SMTP account with gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailerFromEnv returns a mailer even when credentials are absent;
// sends then fail with ErrNotConfigured so each caller applies its own
// policy (registration swallows, appointment notification surfaces).
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	from := os.Getenv("EMAIL")
	password := os.Getenv("EMAIL_PASSWORD")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	m := &SMTPMailer{from: from}
	if host != "" && from != "" {
		m.dialer = gomail.NewDialer(host, port, from, password)
	}
	return m
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	body, err := render(welcomeTemplate, map[string]any{"Name": name})
	if err != nil {
		return err
	}
	return m.send(to, "Welcome to BuildEstate - Your Account Has Been Created", body)
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	body, err := render(passwordResetTemplate, map[string]any{"ResetURL": resetURL})
	if err != nil {
		return err
	}
	return m.send(to, "Password Reset - BuildEstate Security", body)
}

func (m *SMTPMailer) SendAppointmentStatus(to string, view *models.AppointmentView) error {
	title := "Bilinmeyen İlan"
	if view.Property != nil {
		title = view.Property.Title
	}
	body, err := render(appointmentTemplate, map[string]any{
		"Title":       title,
		"Date":        view.Date.Format("02.01.2006"),
		"Time":        view.Time,
		"StatusText":  statusText(view.Status),
		"MeetingLink": view.MeetingLink,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Viewing Appointment %s - BuildEstate", titleCase(view.Status))
	return m.send(to, subject, body)
}

func statusText(status string) string {
	switch status {
	case models.StatusConfirmed:
		return "onaylandı"
	case models.StatusCancelled:
		return "iptal edildi"
	default:
		return "güncellendi"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var _ Mailer = (*SMTPMailer)(nil)
