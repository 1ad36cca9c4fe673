package files

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fileportal/internal/access"
	"fileportal/internal/domain"
)

// CategoryChecker validates a category key against a role group's tabs.
type CategoryChecker interface {
	CategoryExists(ctx context.Context, roleGroup domain.Role, category string) (bool, error)
}

// Notifier fans out file events. Failures are logged by the service, never
// propagated: a missed notification must not fail the write that caused it.
type Notifier interface {
	FileUploaded(ctx context.Context, uploader *domain.User, fileID int64, originalName string) error
	FileStatusChanged(ctx context.Context, uploadedBy string, fileID int64, originalName, status string) error
	FileCommented(ctx context.Context, author, uploadedBy string, fileID int64, originalName string) error
}

type Service struct {
	repo       Repository
	blobs      *DiskStore
	categories CategoryChecker
	notifier   Notifier
}

func NewService(repo Repository, blobs *DiskStore, categories CategoryChecker, notifier Notifier) *Service {
	return &Service{repo: repo, blobs: blobs, categories: categories, notifier: notifier}
}

// List returns the files visible to the actor. Elevated roles see
// everything, optionally narrowed to one uploader group via view; ordinary
// users see their group's uploads plus files shared with them.
func (s *Service) List(ctx context.Context, actor *domain.User, view string) ([]*Row, error) {
	if actor.IsElevated() {
		if view != "" && domain.IsValidRole(view) {
			return s.repo.ListByUploaderRole(ctx, domain.Role(view))
		}
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListVisibleTo(ctx, actor.Role, actor.Username)
}

type UploadInput struct {
	OriginalName string
	ContentType  string
	Category     string
	TargetRole   string
	SharedWith   string
	FolderPath   string
	Content      io.Reader
}

// Upload validates the category against the effective role group's tabs
// before anything touches disk, then stores the blob under a generated name
// and records the row. The blob is rolled back if the insert fails.
func (s *Service) Upload(ctx context.Context, actor *domain.User, in UploadInput) (*File, error) {
	if !access.CanUploadFile(actor.Role) {
		return nil, ErrNotPermitted
	}
	if in.OriginalName == "" || in.Content == nil {
		return nil, ErrEmptyUpload
	}

	effective := access.EffectiveRole(actor, in.TargetRole)
	in.Category = strings.TrimSpace(in.Category)
	ok, err := s.categories.CategoryExists(ctx, domain.Role(effective), in.Category)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	storedName := uuid.New().String() + filepath.Ext(in.OriginalName)
	size, err := s.blobs.Save(storedName, in.Content)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	sharedWith := access.SharedWithAll
	if in.SharedWith == "group" {
		sharedWith = effective
	}

	file := &File{
		Filename:     storedName,
		OriginalName: in.OriginalName,
		FileType:     in.ContentType,
		FileSize:     size,
		Category:     in.Category,
		Status:       StatusPending,
		SharedWith:   sharedWith,
		UploadedBy:   actor.Username,
		FolderPath:   in.FolderPath,
	}
	if err := s.repo.Create(ctx, file); err != nil {
		if rmErr := s.blobs.Remove(storedName); rmErr != nil {
			log.Printf("orphaned blob %s: %v", storedName, rmErr)
		}
		return nil, fmt.Errorf("create file: %w", err)
	}

	if err := s.notifier.FileUploaded(ctx, actor, file.ID, file.OriginalName); err != nil {
		log.Printf("notify upload of file %d: %v", file.ID, err)
	}
	return file, nil
}

// Get returns a file row after the visibility check.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*Row, error) {
	row, err := s.repo.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewFile(actor, row.UploadedBy, row.UploadedByRole, row.SharedWith) {
		return nil, ErrNotPermitted
	}
	return row, nil
}

// Open streams a visible file's blob.
func (s *Service) Open(ctx context.Context, actor *domain.User, id int64) (*Row, io.ReadCloser, error) {
	row, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	blob, err := s.blobs.Open(row.Filename)
	if err != nil {
		return nil, nil, ErrFileNotFound
	}
	return row, blob, nil
}

func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	row, err := s.repo.GetRowByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteFile(actor, row.UploadedBy) {
		return ErrNotPermitted
	}

	if err := s.repo.DeleteComments(ctx, []int64{id}); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if err := s.blobs.Remove(row.Filename); err != nil {
		log.Printf("remove blob %s: %v", row.Filename, err)
	}
	return nil
}

func (s *Service) SetStatus(ctx context.Context, actor *domain.User, id int64, status string) (*Row, error) {
	if !access.CanSetFileStatus(actor.Role) {
		return nil, ErrNotPermitted
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	row, err := s.repo.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	row.Status = status

	if err := s.notifier.FileStatusChanged(ctx, row.UploadedBy, row.ID, row.OriginalName, status); err != nil {
		log.Printf("notify status of file %d: %v", row.ID, err)
	}
	return row, nil
}

func (s *Service) ListComments(ctx context.Context, id int64) ([]*Comment, error) {
	if _, err := s.repo.GetRowByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, id)
}

func (s *Service) AddComment(ctx context.Context, actor *domain.User, id int64, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	row, err := s.repo.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := &Comment{FileID: id, Content: content, Author: actor.Username}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if row.UploadedBy != actor.Username {
		if err := s.notifier.FileCommented(ctx, actor.Username, row.UploadedBy, row.ID, row.OriginalName); err != nil {
			log.Printf("notify comment on file %d: %v", row.ID, err)
		}
	}
	return comment, nil
}

// DeleteFolderSubtree removes every file under a folder subtree together
// with its comments and blobs. Called by the folders service on cascade.
func (s *Service) DeleteFolderSubtree(ctx context.Context, folderPath string) error {
	list, err := s.repo.ListBySubtree(ctx, folderPath)
	if err != nil {
		return fmt.Errorf("list folder files: %w", err)
	}
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.ID)
	}
	if err := s.repo.DeleteComments(ctx, ids); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := s.repo.DeleteBySubtree(ctx, folderPath); err != nil {
		return fmt.Errorf("delete files: %w", err)
	}
	for _, f := range list {
		if err := s.blobs.Remove(f.Filename); err != nil {
			log.Printf("remove blob %s: %v", f.Filename, err)
		}
	}
	return nil
}
