package domain

import "time"

// Testimonial is a visitor-submitted review. Content is sanitized to plain
// text before it reaches the repository and held until an admin approves it.
type Testimonial struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"author_name"`
	Location   string    `json:"location,omitempty"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	ActivityID *int64    `json:"activity_id,omitempty"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}
