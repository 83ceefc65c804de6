package ports

import "context"

// Mail is a single outbound message. HTML body only; the site never sends
// attachments.
type Mail struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers mail. Outbound email is an external collaborator: the dev
// implementation just logs, the production one talks SMTP.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
