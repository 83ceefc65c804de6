package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
)

type stubMailer struct {
	sent []ports.Mail
	err  error
}

func (m *stubMailer) Send(_ context.Context, mail ports.Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

func TestSendContactMessage(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewContactService(mailer, "admin@aciky.org")

	err := svc.SendContactMessage(context.Background(), domain.ContactMessage{
		Name:    "Luisa <script>x()</script>",
		Email:   "luisa@example.com",
		Phone:   "600123123",
		Subject: "clases",
		Message: "¿Hay clases por la mañana?",
	})
	if err != nil {
		t.Fatalf("SendContactMessage: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mailer.sent))
	}

	mail := mailer.sent[0]
	if mail.To != "admin@aciky.org" {
		t.Errorf("To = %q", mail.To)
	}
	if mail.ReplyTo != "luisa@example.com" {
		t.Errorf("ReplyTo = %q", mail.ReplyTo)
	}
	if mail.Subject != "Mensaje de Contacto: Información sobre clases" {
		t.Errorf("Subject = %q", mail.Subject)
	}
	if strings.Contains(mail.HTML, "<script>") {
		t.Errorf("body carries submitted markup: %q", mail.HTML)
	}
	if !strings.Contains(mail.HTML, "Luisa") {
		t.Errorf("body missing name: %q", mail.HTML)
	}
}

func TestSendContactMessage_UnknownSubjectPassesThrough(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewContactService(mailer, "admin@aciky.org")

	err := svc.SendContactMessage(context.Background(), domain.ContactMessage{
		Name: "x", Email: "x@example.com", Subject: "algo-nuevo", Message: "hola",
	})
	if err != nil {
		t.Fatalf("SendContactMessage: %v", err)
	}
	if got := mailer.sent[0].Subject; got != "Mensaje de Contacto: algo-nuevo" {
		t.Errorf("Subject = %q", got)
	}
}

func TestSendContactMessage_Validation(t *testing.T) {
	svc := NewContactService(&stubMailer{}, "admin@aciky.org")
	ctx := context.Background()

	var verr *domain.ValidationError
	err := svc.SendContactMessage(ctx, domain.ContactMessage{Name: "x", Email: "x@example.com", Subject: "otros"})
	if !errors.As(err, &verr) {
		t.Errorf("missing message: err = %v, want ValidationError", err)
	}
	err = svc.SendContactMessage(ctx, domain.ContactMessage{Name: "x", Email: "bad", Subject: "otros", Message: "hola"})
	if !errors.As(err, &verr) {
		t.Errorf("bad email: err = %v, want ValidationError", err)
	}
}

func TestSendBookingRequest(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewContactService(mailer, "admin@aciky.org")

	err := svc.SendBookingRequest(context.Background(), domain.BookingRequest{
		Name:     "Pedro",
		Email:    "pedro@example.com",
		Activity: "Hatha yoga",
		Date:     "2026-09-15",
		Notes:    "Primera vez",
	})
	if err != nil {
		t.Fatalf("SendBookingRequest: %v", err)
	}
	mail := mailer.sent[0]
	if mail.Subject != "Solicitud de Reserva: Hatha yoga" {
		t.Errorf("Subject = %q", mail.Subject)
	}
	if !strings.Contains(mail.HTML, "2026-09-15") {
		t.Errorf("body missing date: %q", mail.HTML)
	}

	var verr *domain.ValidationError
	err = svc.SendBookingRequest(context.Background(), domain.BookingRequest{
		Name: "Pedro", Email: "pedro@example.com", Activity: "Hatha yoga",
	})
	if !errors.As(err, &verr) {
		t.Errorf("missing date: err = %v, want ValidationError", err)
	}
}

func TestSendContactMessage_MailerFailure(t *testing.T) {
	svc := NewContactService(&stubMailer{err: errors.New("smtp down")}, "admin@aciky.org")

	err := svc.SendContactMessage(context.Background(), domain.ContactMessage{
		Name: "x", Email: "x@example.com", Subject: "otros", Message: "hola",
	})
	if err == nil {
		t.Fatal("mailer failure not surfaced")
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		t.Error("mailer failure reported as validation error")
	}
}
