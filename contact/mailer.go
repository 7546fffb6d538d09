package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// ErrMailerNotConfigured indicates the SMTP sender identity or credential is
// missing. It surfaces at send time so the HTTP boundary can collapse it into
// the same generic failure as a transport error.
var ErrMailerNotConfigured = errors.New("contact: smtp credentials not configured")

// Mailer delivers one formatted contact submission.
type Mailer interface {
	Send(ctx context.Context, msg SubmitMessage) error
}

// SMTPConfig configures the SMTP mail transport. User doubles as the sender
// and default recipient identity; Pass is the credential.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	// To overrides the delivery address; defaults to User.
	To string
}

// SMTPMailer sends contact submissions over authenticated SMTP.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer constructs an SMTP mailer, applying gmail-flavoured defaults
// for host and port. Credentials are checked at send time, not here.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if strings.TrimSpace(cfg.Host) == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "587"
	}
	if strings.TrimSpace(cfg.To) == "" {
		cfg.To = cfg.User
	}
	return &SMTPMailer{cfg: cfg}
}

// Send relays the submission to the configured address with both plain-text
// and HTML bodies.
func (m *SMTPMailer) Send(ctx context.Context, msg SubmitMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(m.cfg.User) == "" || strings.TrimSpace(m.cfg.Pass) == "" {
		return ErrMailerNotConfigured
	}

	raw := composeMIME(m.cfg.User, m.cfg.To, msg)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, raw); err != nil {
		return fmt.Errorf("contact: send mail: %w", err)
	}
	return nil
}

// composeMIME builds a multipart/alternative message carrying the text and
// HTML renderings of the submission.
func composeMIME(from, to string, msg SubmitMessage) []byte {
	boundary := strings.ReplaceAll(uuid.NewString(), "-", "")

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if strings.TrimSpace(msg.Email) != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.MailSubject())
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.TextBody())
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTMLBody())
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
