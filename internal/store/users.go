package store

import (
	"context"
	"time"

	"github.com/hms/hms/internal/domain/user"
)

type userRepo struct {
	s *Store
}

func cloneUser(u *user.User) *user.User {
	cp := *u
	return &cp
}

func (r userRepo) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.doc.Users[u.Username]; ok {
		return user.ErrDuplicateUsername
	}
	u.ID = r.s.nextIDLocked(kindUser)
	u.CreatedAt = time.Now().UTC()
	r.s.doc.Users[u.Username] = cloneUser(u)
	return r.s.persistLocked(ctx)
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.doc.Users[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r userRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.doc.Users), nil
}
