package folders

import (
	"context"
	"fmt"
	"strings"

	"fileportal/internal/access"
	"fileportal/internal/domain"
)

// FileStore removes the file rows (and their blobs) living under a folder
// subtree. Implemented by the files service, wired in main.
type FileStore interface {
	DeleteFolderSubtree(ctx context.Context, folderPath string) error
}

// CategoryChecker validates a category key against a role group's tabs.
type CategoryChecker interface {
	CategoryExists(ctx context.Context, roleGroup domain.Role, category string) (bool, error)
}

type Service struct {
	repo       Repository
	files      FileStore
	categories CategoryChecker
}

func NewService(repo Repository, files FileStore, categories CategoryChecker) *Service {
	return &Service{repo: repo, files: files, categories: categories}
}

type CreateInput struct {
	Name       string
	Path       string
	Category   string
	RoleGroup  domain.Role
	ParentPath string
}

func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateInput) (*Folder, error) {
	if !access.CanCreateFolder(actor.Role) {
		return nil, ErrNotPermitted
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Path = strings.TrimSpace(in.Path)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Path == "" || in.Category == "" || !domain.IsRoleGroup(string(in.RoleGroup)) {
		return nil, ErrInvalidFolder
	}

	ok, err := s.categories.CategoryExists(ctx, in.RoleGroup, in.Category)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	exists, err := s.repo.Exists(ctx, in.Path, in.Category, in.RoleGroup)
	if err != nil {
		return nil, fmt.Errorf("check folder: %w", err)
	}
	if exists {
		return nil, ErrFolderExists
	}

	folder := &Folder{
		Name:       in.Name,
		Path:       in.Path,
		Category:   in.Category,
		RoleGroup:  in.RoleGroup,
		CreatedBy:  actor.Username,
		ParentPath: in.ParentPath,
	}
	if err := s.repo.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return folder, nil
}

func (s *Service) List(ctx context.Context, roleGroup domain.Role) ([]*Folder, error) {
	return s.repo.ListByGroup(ctx, roleGroup)
}

// Delete removes a folder and cascades over nested folders and their files.
// File blobs are removed best-effort; a blob already missing on disk does
// not fail the delete.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	folder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !access.CanDeleteFolder(actor, folder.CreatedBy) {
		return ErrNotPermitted
	}

	if err := s.files.DeleteFolderSubtree(ctx, folder.Path); err != nil {
		return fmt.Errorf("delete folder files: %w", err)
	}
	if err := s.repo.DeleteSubtree(ctx, folder.Path); err != nil {
		return fmt.Errorf("delete folders: %w", err)
	}
	return nil
}
