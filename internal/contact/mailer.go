package contact

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"net/url"
	"strings"
)

// Handoff tells the browser where to go after delivery. URI is empty when the
// message was sent server-side.
type Handoff struct {
	URI string `json:"uri,omitempty"`
}

// Mailer delivers a validated form.
type Mailer interface {
	Deliver(ctx context.Context, f Form) (Handoff, error)
}

// MailtoMailer hands the message to the visitor's own mail client.
type MailtoMailer struct {
	To string
}

func (m MailtoMailer) Deliver(_ context.Context, f Form) (Handoff, error) {
	if m.To == "" {
		return Handoff{}, fmt.Errorf("contact address not configured")
	}
	return Handoff{URI: MailtoURI(m.To, f.Subject(), f.Body())}, nil
}

// MailtoURI builds a mailto: link with percent-encoded subject and body.
func MailtoURI(to, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, encodeComponent(subject), encodeComponent(body))
}

// encodeComponent escapes like a query value but writes spaces as %20, which
// mail clients do not decode from '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SMTPMailer sends the message through an SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host, port, user, pass, to string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, To: to, send: smtp.SendMail}
}

func (m *SMTPMailer) Deliver(_ context.Context, f Form) (Handoff, error) {
	if m.User == "" || m.Pass == "" {
		return Handoff{}, fmt.Errorf("SMTP credentials not configured")
	}
	if err := f.Validate(); err != nil {
		return Handoff{}, err
	}

	msg := []byte("To: " + m.To + "\r\n" +
		"Subject: " + f.Subject() + "\r\n" +
		"From: " + m.User + "\r\n" +
		"Reply-To: " + f.Email + "\r\n" +
		"\r\n" +
		f.Body() + "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := m.send(m.Host+":"+m.Port, auth, m.User, []string{m.To}, msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return Handoff{}, fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", f.Name, f.Email)
	return Handoff{}, nil
}
