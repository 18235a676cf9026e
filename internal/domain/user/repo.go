package user

import "context"

type Repository interface {
	// Create allocates the ID, stamps CreatedAt, inserts, and persists.
	// Returns ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, u *User) error
	// GetByUsername returns ErrNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
	Count(ctx context.Context) (int, error)
}
