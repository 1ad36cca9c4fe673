package profile

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fileportal/internal/domain"
	"fileportal/internal/domain/auth"
	"fileportal/internal/domain/files"
)

const minPasswordLength = 6

// UserStore is the user repository surface the profile service needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateProfilePicture(ctx context.Context, id int64, path string) error
}

type Service struct {
	repo  Repository
	users UserStore
	blobs *files.DiskStore
}

func NewService(repo Repository, users UserStore, blobs *files.DiskStore) *Service {
	return &Service{repo: repo, users: users, blobs: blobs}
}

// Get returns the actor's profile row, or an empty one if none exists yet.
func (s *Service) Get(ctx context.Context, actor *domain.User) (*UserProfile, error) {
	p, err := s.repo.Get(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &UserProfile{UserID: actor.ID}
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, actor *domain.User, fullName, email string) (*UserProfile, error) {
	p := &UserProfile{
		UserID:   actor.ID,
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return s.Get(ctx, actor)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *Service) ChangePassword(ctx context.Context, actor *domain.User, current, next string) error {
	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return ErrWrongPassword
	}
	if len(next) < minPasswordLength {
		return ErrWeakPassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, actor.ID, hash)
}

// UpdatePicture stores an image blob and points the user's profile picture
// at its serving path.
func (s *Service) UpdatePicture(ctx context.Context, actor *domain.User, originalName, contentType string, content io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	name := fmt.Sprintf("profile_%d_%s%s", actor.ID, uuid.New().String(), filepath.Ext(originalName))
	if _, err := s.blobs.Save(name, content); err != nil {
		return "", fmt.Errorf("store picture: %w", err)
	}

	path := "/api/files/profile/" + name
	if err := s.users.UpdateProfilePicture(ctx, actor.ID, path); err != nil {
		return "", fmt.Errorf("update picture: %w", err)
	}
	return path, nil
}
