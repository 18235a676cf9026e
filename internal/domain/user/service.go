package user

import (
	"context"
	"fmt"
)

type Service struct {
	users Repository
}

func NewService(users Repository) *Service {
	return &Service{users: users}
}

// RegisterInput carries the fields accepted at registration. Email and
// phone are optional.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if in.Role == "" {
		return nil, fmt.Errorf("role is required")
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("first_name and last_name are required")
	}

	u := &User{
		Username:     in.Username,
		PasswordHash: HashPassword(in.Password),
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks credentials in a fixed order: unknown username,
// then digest mismatch, then disabled account.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	return u, nil
}

func (s *Service) Lookup(ctx context.Context, username string) (*User, error) {
	return s.users.GetByUsername(ctx, username)
}
