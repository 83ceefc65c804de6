package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/pkg/sanitize"
	"github.com/aciky/community-api/pkg/validation"
)

// subjectLabels maps the contact form's subject keys to the display subjects
// used in the association mailbox. Unknown keys pass through as-is.
var subjectLabels = map[string]string{
	"clases":       "Información sobre clases",
	"espacios":     "Consulta sobre espacios",
	"instructores": "Quiero ser instructor",
	"eventos":      "Eventos y retiros",
	"otros":        "Consulta general",
}

// ContactService turns contact and booking form submissions into mail to the
// association address.
type ContactService struct {
	mailer    ports.Mailer
	adminAddr string
}

func NewContactService(mailer ports.Mailer, adminAddr string) *ContactService {
	return &ContactService{mailer: mailer, adminAddr: adminAddr}
}

// SendContactMessage validates and sanitizes a contact submission, then
// forwards it with reply-to set to the visitor.
func (s *ContactService) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return &domain.ValidationError{Message: "Name, email, subject and message are required"}
	}
	emailRes := validation.ValidateEmail(msg.Email)
	if !emailRes.Valid {
		return &domain.ValidationError{Message: emailRes.Message}
	}

	subject := msg.Subject
	if label, ok := subjectLabels[subject]; ok {
		subject = label
	}

	body := contactBody(map[string]string{
		"Nombre":   sanitize.Text(msg.Name),
		"Email":    emailRes.Value,
		"Teléfono": sanitize.Text(msg.Phone),
		"Asunto":   subject,
		"Mensaje":  sanitize.Text(msg.Message),
	}, []string{"Nombre", "Email", "Teléfono", "Asunto", "Mensaje"})

	err := s.mailer.Send(ctx, ports.Mail{
		To:      s.adminAddr,
		ReplyTo: emailRes.Value,
		Subject: "Mensaje de Contacto: " + subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// SendBookingRequest forwards a class or space booking request.
func (s *ContactService) SendBookingRequest(ctx context.Context, req domain.BookingRequest) error {
	if req.Name == "" || req.Email == "" || req.Activity == "" || req.Date == "" {
		return &domain.ValidationError{Message: "Name, email, activity and date are required"}
	}
	emailRes := validation.ValidateEmail(req.Email)
	if !emailRes.Valid {
		return &domain.ValidationError{Message: emailRes.Message}
	}

	body := contactBody(map[string]string{
		"Nombre":    sanitize.Text(req.Name),
		"Email":     emailRes.Value,
		"Teléfono":  sanitize.Text(req.Phone),
		"Actividad": sanitize.Text(req.Activity),
		"Fecha":     sanitize.Text(req.Date),
		"Notas":     sanitize.Text(req.Notes),
	}, []string{"Nombre", "Email", "Teléfono", "Actividad", "Fecha", "Notas"})

	err := s.mailer.Send(ctx, ports.Mail{
		To:      s.adminAddr,
		ReplyTo: emailRes.Value,
		Subject: "Solicitud de Reserva: " + sanitize.Text(req.Activity),
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("send booking mail: %w", err)
	}
	return nil
}

// contactBody renders the submission as a simple definition list. Values
// arrive sanitized to plain text and are HTML-escaped again on output.
func contactBody(fields map[string]string, order []string) string {
	var b strings.Builder
	b.WriteString("<h2>Nueva solicitud desde la web</h2>")
	for _, key := range order {
		value := fields[key]
		if value == "" {
			continue
		}
		b.WriteString("<p><strong>")
		b.WriteString(html.EscapeString(key))
		b.WriteString(":</strong> ")
		b.WriteString(html.EscapeString(value))
		b.WriteString("</p>")
	}
	return b.String()
}
