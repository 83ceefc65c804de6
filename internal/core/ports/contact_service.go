package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// ContactService forwards contact-form and booking submissions by email.
type ContactService interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
	SendBookingRequest(ctx context.Context, req domain.BookingRequest) error
}
