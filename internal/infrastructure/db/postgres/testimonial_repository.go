package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aciky/community-api/internal/core/domain"
)

// TestimonialRepository is the lib/pq implementation of
// ports.TestimonialRepository.
type TestimonialRepository struct {
	db *sql.DB
}

func NewTestimonialRepository(db *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

const testimonialColumns = "id, author_name, location, content, rating, activity_id, approved, created_at"

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) (int64, error) {
	var id int64
	location := sql.NullString{String: t.Location, Valid: t.Location != ""}
	var activityID sql.NullInt64
	if t.ActivityID != nil {
		activityID = sql.NullInt64{Int64: *t.ActivityID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO testimonials (author_name, location, content, rating, activity_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		t.AuthorName, location, t.Content, t.Rating, activityID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert testimonial: %w", err)
	}
	return id, nil
}

func (r *TestimonialRepository) FindApproved(ctx context.Context) ([]*domain.Testimonial, error) {
	return r.query(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE approved = TRUE ORDER BY created_at DESC`)
}

func (r *TestimonialRepository) FindAll(ctx context.Context) ([]*domain.Testimonial, error) {
	return r.query(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
}

func (r *TestimonialRepository) SetApproval(ctx context.Context, id int64, approved bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE testimonials SET approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("set approval: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) query(ctx context.Context, q string) ([]*domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	var out []*domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		var location sql.NullString
		var activityID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.AuthorName, &location, &t.Content, &t.Rating, &activityID, &t.Approved, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		t.Location = location.String
		if activityID.Valid {
			t.ActivityID = &activityID.Int64
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return out, nil
}
