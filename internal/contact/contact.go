// Package contact delivers messages sent through the portfolio contact form.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when no SMTP credentials are set.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Form is the contact form as posted by the page.
type Form struct {
	FullName string `form:"fullName" binding:"required,max=120"`
	Email    string `form:"email" binding:"required,email,max=254"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// Mailer sends a contact message to the site owner.
type Mailer interface {
	Send(f Form) error
}

// Sender is the subset of gomail.Dialer used by SMTPMailer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers contact messages over SMTP.
type SMTPMailer struct {
	sender Sender
	from   string
	to     string
}

// NewSMTPMailer returns a mailer for the given account. With an empty user
// or password every Send fails with ErrNotConfigured.
func NewSMTPMailer(host string, port int, user, password, to string) *SMTPMailer {
	m := &SMTPMailer{from: user, to: to}
	if user != "" && password != "" {
		m.sender = gomail.NewDialer(host, port, user, password)
	}
	return m
}

// NewMailerWithSender is used when the transport is provided by the caller.
func NewMailerWithSender(s Sender, from, to string) *SMTPMailer {
	return &SMTPMailer{sender: s, from: from, to: to}
}

func (m *SMTPMailer) Send(f Form) error {
	if m.sender == nil {
		return ErrNotConfigured
	}
	if err := m.sender.DialAndSend(Message(f, m.from, m.to)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// Message builds the mail for f.
func Message(f Form, from, to string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Reply-To", f.Email)
	msg.SetHeader("Subject", "Portfolio Contact: "+oneLine(f.FullName))
	msg.SetBody("text/plain", fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.FullName, f.Email, f.Message))
	return msg
}

// oneLine strips line breaks so a name cannot inject headers.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
