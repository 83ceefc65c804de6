package service

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository for service tests. Setting err
// makes every call fail with it.
type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	err    error
}

func newStubUserRepo(seed ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: map[int64]*domain.User{}, nextID: 1}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[cp.ID] = &cp
	return cp.ID, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) ([]*domain.User, error) {
	return r.FindByEmailOrUsernameExcluding(context.Background(), email, username, 0)
}

func (r *stubUserRepo) FindByEmailOrUsernameExcluding(_ context.Context, email, username string, excludeID int64) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.User
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if (email != "" && u.Email == email) || (username != "" && u.Username == username) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindAll(_ context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context, role string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, u := range r.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, update domain.UserUpdate) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) RoleByID(_ context.Context, id int64) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	u, ok := r.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

// stubTestimonialRepo records created testimonials for assertion.
type stubTestimonialRepo struct {
	created  []*domain.Testimonial
	approved []*domain.Testimonial
	all      []*domain.Testimonial
	setID    int64
	setTo    bool
	deleted  int64
	err      error
}

func (r *stubTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = append(r.created, t)
	return int64(len(r.created)), nil
}

func (r *stubTestimonialRepo) FindApproved(_ context.Context) ([]*domain.Testimonial, error) {
	return r.approved, r.err
}

func (r *stubTestimonialRepo) FindAll(_ context.Context) ([]*domain.Testimonial, error) {
	return r.all, r.err
}

func (r *stubTestimonialRepo) SetApproval(_ context.Context, id int64, approved bool) error {
	r.setID, r.setTo = id, approved
	return r.err
}

func (r *stubTestimonialRepo) Delete(_ context.Context, id int64) error {
	r.deleted = id
	return r.err
}
