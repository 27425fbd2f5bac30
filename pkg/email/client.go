// Package email sends forwarded notifications over SMTP.
package email

import (
	"strings"

	"gopkg.in/mail.v2"
)

// DefaultSubject is used when the message has no title line.
const DefaultSubject = "CRM notification"

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send mails msg to one address. A first line followed by a blank line becomes the subject.
func (c *Client) Send(to string, msg string) error {
	subject, body := split(msg)

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain; charset=UTF-8", body)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}

func split(msg string) (subject, body string) {
	head, rest, ok := strings.Cut(msg, "\n\n")
	if !ok || strings.Contains(head, "\n") {
		return DefaultSubject, msg
	}

	return head, rest
}
