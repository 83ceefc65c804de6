package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
)

func TestTestimonialSubmit_SanitizesText(t *testing.T) {
	repo := &stubTestimonialRepo{}
	svc := NewTestimonialService(repo)

	id, err := svc.Submit(context.Background(), ports.SubmitTestimonialParams{
		AuthorName: `<b>Eva</b>`,
		Location:   `Madrid<script>x()</script>`,
		Content:    `<p>Gran clase</p> de yoga`,
		Rating:     5,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == 0 {
		t.Fatal("id = 0")
	}

	created := repo.created[0]
	for _, field := range []string{created.AuthorName, created.Location, created.Content} {
		if strings.Contains(field, "<") {
			t.Errorf("field %q contains markup", field)
		}
	}
	if created.AuthorName != "Eva" {
		t.Errorf("author = %q, want Eva", created.AuthorName)
	}
	if !strings.Contains(created.Content, "Gran clase") {
		t.Errorf("content = %q", created.Content)
	}
}

func TestTestimonialSubmit_Validation(t *testing.T) {
	svc := NewTestimonialService(&stubTestimonialRepo{})
	ctx := context.Background()

	cases := []struct {
		name   string
		params ports.SubmitTestimonialParams
	}{
		{"missing name", ports.SubmitTestimonialParams{Content: "x", Rating: 3}},
		{"missing content", ports.SubmitTestimonialParams{AuthorName: "x", Rating: 3}},
		{"missing rating", ports.SubmitTestimonialParams{AuthorName: "x", Content: "y"}},
		{"rating too low", ports.SubmitTestimonialParams{AuthorName: "x", Content: "y", Rating: -1}},
		{"rating too high", ports.SubmitTestimonialParams{AuthorName: "x", Content: "y", Rating: 6}},
	}
	for _, tc := range cases {
		_, err := svc.Submit(ctx, tc.params)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}

	// Boundary ratings are accepted.
	for _, rating := range []int{1, 5} {
		if _, err := svc.Submit(ctx, ports.SubmitTestimonialParams{
			AuthorName: "x", Content: "y", Rating: rating,
		}); err != nil {
			t.Errorf("rating %d: %v", rating, err)
		}
	}
}

func TestTestimonialModeration(t *testing.T) {
	repo := &stubTestimonialRepo{
		approved: []*domain.Testimonial{{ID: 1, Approved: true}},
		all:      []*domain.Testimonial{{ID: 1, Approved: true}, {ID: 2}},
	}
	svc := NewTestimonialService(repo)
	ctx := context.Background()

	approved, err := svc.Approved(ctx)
	if err != nil || len(approved) != 1 {
		t.Fatalf("Approved: %v, len %d", err, len(approved))
	}
	all, err := svc.All(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("All: %v, len %d", err, len(all))
	}

	if err := svc.SetApproval(ctx, 2, true); err != nil {
		t.Fatalf("SetApproval: %v", err)
	}
	if repo.setID != 2 || !repo.setTo {
		t.Errorf("SetApproval forwarded id=%d to=%v", repo.setID, repo.setTo)
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.deleted != 1 {
		t.Errorf("Delete forwarded id=%d", repo.deleted)
	}
}
