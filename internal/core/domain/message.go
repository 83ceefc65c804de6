package domain

// ContactMessage is a contact-form submission forwarded to the association
// mailbox.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// BookingRequest asks for a class or space reservation by email.
type BookingRequest struct {
	Name       string
	Email      string
	Phone      string
	ActivityID int64
	Activity   string
	Date       string
	Notes      string
}
