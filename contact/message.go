// Package contact relays contact-form submissions to a mail transport. The
// boundary is deliberately lenient: fields are untyped strings, absent values
// forwarded as empty rather than rejected, and every failure collapses to one
// generic response so transport and credential details never leak to callers.
package contact

import (
	"fmt"
	"strings"
)

const submitMessageType = "portfolio.contact.submit"

// SubmitMessage carries one contact form submission through the command
// pipeline. There is no Validate hook: the relay forwards whatever the form
// sent, including empty fields.
type SubmitMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Type implements command.Message.
func (SubmitMessage) Type() string { return submitMessageType }

// MailSubject builds the subject line for the relayed email.
func (m SubmitMessage) MailSubject() string {
	return "New Contact Form Submission: " + m.Subject
}

// TextBody renders the plain-text form of the relayed email.
func (m SubmitMessage) TextBody() string {
	var b strings.Builder
	b.WriteString("New contact form submission from your portfolio website:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	fmt.Fprintf(&b, "Subject: %s\n", m.Subject)
	fmt.Fprintf(&b, "Message: %s\n", m.Message)
	return b.String()
}

// HTMLBody renders the HTML form of the relayed email.
func (m SubmitMessage) HTMLBody() string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", m.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", m.Email)
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", m.Subject)
	b.WriteString("<h3>Message:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", m.Message)
	return b.String()
}
