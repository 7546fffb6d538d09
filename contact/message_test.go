package contact

import (
	"strings"
	"testing"
)

func TestSubmitMessage_MailSubject(t *testing.T) {
	msg := SubmitMessage{Subject: "Portfolio Website Question"}

	if got := msg.MailSubject(); got != "New Contact Form Submission: Portfolio Website Question" {
		t.Fatalf("subject mismatch: %q", got)
	}
}

func TestSubmitMessage_TextBody(t *testing.T) {
	msg := SubmitMessage{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Subject: "Business Inquiry",
		Message: "I would like to discuss a potential collaboration.",
	}

	text := msg.TextBody()
	for _, want := range []string{
		"Name: Jane Smith",
		"Email: jane@example.com",
		"Subject: Business Inquiry",
		"Message: I would like to discuss a potential collaboration.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text body missing %q:\n%s", want, text)
		}
	}
}

func TestSubmitMessage_HTMLBody(t *testing.T) {
	msg := SubmitMessage{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Subject: "Business Inquiry",
		Message: "I would like to discuss a potential collaboration.",
	}

	html := msg.HTMLBody()
	for _, want := range []string{
		"<strong>Name:</strong> Jane Smith",
		"<strong>Email:</strong> jane@example.com",
		"<strong>Subject:</strong> Business Inquiry",
		"<p>I would like to discuss a potential collaboration.</p>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html body missing %q:\n%s", want, html)
		}
	}
}

func TestSubmitMessage_AbsentFieldsForwardedEmpty(t *testing.T) {
	msg := SubmitMessage{Name: "J"}

	text := msg.TextBody()
	if !strings.Contains(text, "Email: \n") {
		t.Fatalf("absent email must forward as empty, got:\n%s", text)
	}
	if !strings.Contains(text, "Name: J") {
		t.Fatalf("present field dropped:\n%s", text)
	}
}

func TestComposeMIME(t *testing.T) {
	msg := SubmitMessage{
		Name:    "J",
		Email:   "j@x.com",
		Subject: "Hi",
		Message: "Hello",
	}

	raw := string(composeMIME("owner@example.com", "owner@example.com", msg))
	for _, want := range []string{
		"From: owner@example.com",
		"To: owner@example.com",
		"Reply-To: j@x.com",
		"Subject: New Contact Form Submission: Hi",
		"Content-Type: multipart/alternative",
		"Content-Type: text/plain",
		"Content-Type: text/html",
		"Name: J",
		"<strong>Name:</strong> J",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("mime message missing %q:\n%s", want, raw)
		}
	}
}

func TestComposeMIME_NoReplyToWhenEmailAbsent(t *testing.T) {
	raw := string(composeMIME("owner@example.com", "owner@example.com", SubmitMessage{Name: "J"}))
	if strings.Contains(raw, "Reply-To:") {
		t.Fatalf("unexpected Reply-To header:\n%s", raw)
	}
}
