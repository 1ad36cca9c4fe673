package vault

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fileportal/internal/access"
	"fileportal/internal/domain"
)

// UserStore enumerates collector accounts for the developer listing.
type UserStore interface {
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
}

type Service struct {
	repo      Repository
	blobs     *DiskStore
	users     UserStore
	passwords map[string]string // role -> vault password
}

func NewService(repo Repository, blobs *DiskStore, users UserStore, passwords map[string]string) *Service {
	return &Service{repo: repo, blobs: blobs, users: users, passwords: passwords}
}

// Access verifies the actor's role-specific vault password. Only roles with
// a configured password may enter at all.
func (s *Service) Access(actor *domain.User, password string) error {
	expected, ok := s.passwords[string(actor.Role)]
	if !ok {
		return ErrNotPermitted
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		return ErrWrongPassword
	}
	return nil
}

// Collectors lists collector accounts for the developer's vault overview.
func (s *Service) Collectors(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if !access.CanListCollectors(actor.Role) {
		return nil, ErrNotPermitted
	}
	return s.users.ListByRoles(ctx, domain.RoleCollector)
}

func (s *Service) requireCollector(actor *domain.User) error {
	if !access.CanAccessVault(actor.Role) {
		return ErrNotPermitted
	}
	return nil
}

// --- tabs ---

func (s *Service) ListTabs(ctx context.Context, actor *domain.User) ([]*VaultTab, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	return s.repo.ListTabs(ctx, actor.ID)
}

// ListTabsFor serves both a collector reading its own tabs and a developer
// inspecting any collector's tab list. Developers never see vault files
// through this.
func (s *Service) ListTabsFor(ctx context.Context, actor *domain.User, collectorID int64) ([]*VaultTab, error) {
	if !access.CanReadVaultTabs(actor, collectorID) {
		return nil, ErrNotPermitted
	}
	return s.repo.ListTabs(ctx, collectorID)
}

func (s *Service) CreateTab(ctx context.Context, actor *domain.User, tabName, tabKey string) (*VaultTab, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	return s.createTab(ctx, actor.ID, tabName, tabKey)
}

func (s *Service) CreateTabFor(ctx context.Context, actor *domain.User, collectorID int64, tabName, tabKey string) (*VaultTab, error) {
	if !access.CanReadVaultTabs(actor, collectorID) {
		return nil, ErrNotPermitted
	}
	return s.createTab(ctx, collectorID, tabName, tabKey)
}

func (s *Service) createTab(ctx context.Context, collectorID int64, tabName, tabKey string) (*VaultTab, error) {
	tabName = strings.TrimSpace(tabName)
	tabKey = strings.TrimSpace(tabKey)
	if tabName == "" || tabKey == "" {
		return nil, ErrEmptyTab
	}

	exists, err := s.repo.TabExists(ctx, collectorID, tabKey)
	if err != nil {
		return nil, fmt.Errorf("check tab: %w", err)
	}
	if exists {
		return nil, ErrTabExists
	}

	max, err := s.repo.MaxTabOrder(ctx, collectorID)
	if err != nil {
		return nil, fmt.Errorf("next display order: %w", err)
	}

	tab := &VaultTab{CollectorID: collectorID, TabName: tabName, TabKey: tabKey, DisplayOrder: max + 1}
	if err := s.repo.CreateTab(ctx, tab); err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}
	return tab, nil
}

func (s *Service) DeleteTabFor(ctx context.Context, actor *domain.User, collectorID, tabID int64) error {
	if !access.CanReadVaultTabs(actor, collectorID) {
		return ErrNotPermitted
	}
	affected, err := s.repo.DeleteTab(ctx, tabID, collectorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- files ---

func (s *Service) ListFiles(ctx context.Context, actor *domain.User, category string) ([]*FileRow, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	return s.repo.ListFiles(ctx, actor.ID, category)
}

type UploadInput struct {
	OriginalName string
	ContentType  string
	Category     string
	FolderPath   string
	Content      io.Reader
}

func (s *Service) Upload(ctx context.Context, actor *domain.User, in UploadInput) (*VaultFile, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	in.Category = strings.TrimSpace(in.Category)
	if in.OriginalName == "" || in.Category == "" || in.Content == nil {
		return nil, ErrEmptyUpload
	}

	ok, err := s.repo.TabExists(ctx, actor.ID, in.Category)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	storedName := uuid.New().String() + filepath.Ext(in.OriginalName)
	size, err := s.blobs.Save(actor.ID, storedName, in.Content)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	file := &VaultFile{
		Filename:     storedName,
		OriginalName: in.OriginalName,
		FileType:     in.ContentType,
		FileSize:     size,
		Category:     in.Category,
		Status:       "approved",
		CollectorID:  actor.ID,
		FolderPath:   in.FolderPath,
	}
	if err := s.repo.CreateFile(ctx, file); err != nil {
		if rmErr := s.blobs.Remove(actor.ID, storedName); rmErr != nil {
			log.Printf("orphaned vault blob %s: %v", storedName, rmErr)
		}
		return nil, fmt.Errorf("create vault file: %w", err)
	}
	return file, nil
}

func (s *Service) GetFile(ctx context.Context, actor *domain.User, id int64) (*FileRow, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	return s.repo.GetFile(ctx, id, actor.ID)
}

// OpenFile streams a vault blob for download.
func (s *Service) OpenFile(ctx context.Context, actor *domain.User, id int64) (*FileRow, io.ReadCloser, error) {
	row, err := s.GetFile(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	blob, err := s.blobs.Open(actor.ID, row.Filename)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return row, blob, nil
}

func (s *Service) DeleteFile(ctx context.Context, actor *domain.User, id int64) error {
	row, err := s.GetFile(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteComments(ctx, []int64{id}); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := s.repo.DeleteFile(ctx, id, actor.ID); err != nil {
		return fmt.Errorf("delete vault file: %w", err)
	}
	if err := s.blobs.Remove(actor.ID, row.Filename); err != nil {
		log.Printf("remove vault blob %s: %v", row.Filename, err)
	}
	return nil
}

// --- comments ---

func (s *Service) ListComments(ctx context.Context, actor *domain.User, fileID int64) ([]*VaultComment, error) {
	if _, err := s.GetFile(ctx, actor, fileID); err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, fileID)
}

func (s *Service) AddComment(ctx context.Context, actor *domain.User, fileID int64, content string) (*VaultComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.GetFile(ctx, actor, fileID); err != nil {
		return nil, err
	}

	comment := &VaultComment{VaultFileID: fileID, Content: content, Author: actor.Username}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create vault comment: %w", err)
	}
	return comment, nil
}

// --- folders ---

func (s *Service) ListFolders(ctx context.Context, actor *domain.User) ([]*VaultFolder, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}
	return s.repo.ListFolders(ctx, actor.ID)
}

type FolderInput struct {
	Name       string
	Path       string
	Category   string
	ParentPath string
}

func (s *Service) CreateFolder(ctx context.Context, actor *domain.User, in FolderInput) (*VaultFolder, error) {
	if err := s.requireCollector(actor); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Path = strings.TrimSpace(in.Path)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Path == "" || in.Category == "" {
		return nil, ErrInvalidFolder
	}

	ok, err := s.repo.TabExists(ctx, actor.ID, in.Category)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	exists, err := s.repo.FolderExists(ctx, actor.ID, in.Path, in.Category)
	if err != nil {
		return nil, fmt.Errorf("check folder: %w", err)
	}
	if exists {
		return nil, ErrFolderExists
	}

	folder := &VaultFolder{
		Name:        in.Name,
		Path:        in.Path,
		Category:    in.Category,
		CollectorID: actor.ID,
		ParentPath:  in.ParentPath,
	}
	if err := s.repo.CreateFolder(ctx, folder); err != nil {
		return nil, fmt.Errorf("create vault folder: %w", err)
	}
	return folder, nil
}

// DeleteFolder cascades over the subtree: comments, file rows, blobs, then
// the folder rows themselves.
func (s *Service) DeleteFolder(ctx context.Context, actor *domain.User, id int64) error {
	if err := s.requireCollector(actor); err != nil {
		return err
	}
	folder, err := s.repo.GetFolder(ctx, id, actor.ID)
	if err != nil {
		return err
	}

	list, err := s.repo.ListFilesBySubtree(ctx, actor.ID, folder.Path)
	if err != nil {
		return fmt.Errorf("list folder files: %w", err)
	}
	if len(list) > 0 {
		ids := make([]int64, 0, len(list))
		for _, f := range list {
			ids = append(ids, f.ID)
		}
		if err := s.repo.DeleteComments(ctx, ids); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := s.repo.DeleteFilesBySubtree(ctx, actor.ID, folder.Path); err != nil {
			return fmt.Errorf("delete files: %w", err)
		}
		for _, f := range list {
			if err := s.blobs.Remove(actor.ID, f.Filename); err != nil {
				log.Printf("remove vault blob %s: %v", f.Filename, err)
			}
		}
	}
	if err := s.repo.DeleteFolderSubtree(ctx, actor.ID, folder.Path); err != nil {
		return fmt.Errorf("delete folders: %w", err)
	}
	return nil
}
