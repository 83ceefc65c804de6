package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aciky/community-api/internal/core/ports"
)

// LogMailer records outbound mail instead of sending it. Used whenever SMTP
// credentials are not configured, so the contact endpoints stay exercisable
// in development.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg ports.Mail) error {
	m.log.Info().
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Msg("mail suppressed (no SMTP configured)")
	return nil
}
