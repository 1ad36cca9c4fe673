package admin

import (
	"context"
	"fmt"
	"strings"

	"fileportal/internal/domain"
	"fileportal/internal/domain/auth"
)

const minPasswordLength = 6

// UserStore is the account management surface of the user repository.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// SessionStore revokes sessions when an account is removed.
type SessionStore interface {
	DeleteByUser(ctx context.Context, userID int64) error
}

type Service struct {
	users    UserStore
	sessions SessionStore
}

func NewService(users UserStore, sessions SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

type CreateInput struct {
	Username string
	Password string
	Role     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if !domain.IsValidRole(in.Role) {
		return nil, ErrInvalidRole
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Username: in.Username, PasswordHash: hash, Role: domain.Role(in.Role)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

type UpdateInput struct {
	Username string
	Role     string
	Password string // optional; empty keeps the current one
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	if !domain.IsValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username, id)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	user.Username = in.Username
	user.Role = domain.Role(in.Role)
	if in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return nil, ErrWeakPassword
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes an account and revokes its sessions. Deleting yourself is
// refused so the portal always keeps a reachable developer.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if actor.ID == id {
		return ErrSelfDelete
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.sessions.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
