package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

func newCapturingService(t *testing.T) (*Service, *[]*gomail.Message) {
	t.Helper()
	var sent []*gomail.Message
	svc := NewService(Config{Host: "smtp.example.com", Port: 587, From: "noreply@careerdraft.com"})
	svc.send = func(m *gomail.Message) error {
		sent = append(sent, m)
		return nil
	}
	return svc, &sent
}

func TestSendSetsHeadersAndMessageID(t *testing.T) {
	svc, sent := newCapturingService(t)

	id, err := svc.Send(context.Background(), Message{
		To:      "jane@example.com",
		Subject: "Your resume",
		Text:    "Attached.",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !strings.HasPrefix(id, "<") || !strings.HasSuffix(id, "@careerdraft.com>") {
		t.Fatalf("messageID = %q", id)
	}
	if len(*sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(*sent))
	}
	m := (*sent)[0]
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Fatalf("To = %v", got)
	}
	if got := m.GetHeader("Message-ID"); len(got) != 1 || got[0] != id {
		t.Fatalf("Message-ID = %v, want %q", got, id)
	}
}

func TestSendRejectsIncompleteMessage(t *testing.T) {
	svc, _ := newCapturingService(t)

	_, err := svc.Send(context.Background(), Message{To: "jane@example.com"})
	if !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("err = %v, want ErrInvalidMessage", err)
	}
}

func TestSendWithAttachmentDefaultsBody(t *testing.T) {
	svc, sent := newCapturingService(t)

	_, _, err := svc.SendWithAttachment(context.Background(),
		"jane@example.com", "Your resume", "", []byte("%PDF-1.4"), "resume.pdf")
	if err != nil {
		t.Fatalf("SendWithAttachment: %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(*sent))
	}
}

func TestSendPropagatesTransportErrors(t *testing.T) {
	svc, _ := newCapturingService(t)
	svc.send = func(*gomail.Message) error { return errors.New("connection refused") }

	_, err := svc.Send(context.Background(), Message{
		To: "jane@example.com", Subject: "s", Text: "t",
	})
	if err == nil {
		t.Fatal("expected transport error")
	}
}
