package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

// UserStore is the subset of the user repository the auth service needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SessionStore persists opaque session tokens.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewService(users UserStore, sessions SessionStore, sessionTTL time.Duration) *Service {
	return &Service{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Login verifies credentials and opens a new session.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	return user, session, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Resolve maps a session token to its user. Expired sessions are removed
// lazily here rather than by a background job.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	if session.Expired() {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Orphaned session, the user was deleted.
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session user: %w", err)
	}
	return user, nil
}

// HashPassword is shared by seed, admin and profile code.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
