package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

const listLimit = 50

// UserStore resolves notification recipients.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
}

type Service struct {
	repo  Repository
	users UserStore
}

func NewService(repo Repository, users UserStore) *Service {
	return &Service{repo: repo, users: users}
}

// List returns the actor's latest notifications and the unread total.
func (s *Service) List(ctx context.Context, actor *domain.User) ([]*Notification, int64, error) {
	list, err := s.repo.ListByUser(ctx, actor.ID, listLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) Create(ctx context.Context, userID int64, typ, title, message string, relatedID *int64) (*Notification, error) {
	n := &Notification{UserID: userID, Type: typ, Title: title, Message: message, RelatedID: relatedID}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, actor *domain.User, id int64) error {
	affected, err := s.repo.MarkRead(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, actor *domain.User) error {
	return s.repo.MarkAllRead(ctx, actor.ID)
}

func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	affected, err := s.repo.Delete(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteAll(ctx context.Context, actor *domain.User) error {
	return s.repo.DeleteAll(ctx, actor.ID)
}

// FileUploaded notifies every collector and developer except the uploader.
func (s *Service) FileUploaded(ctx context.Context, uploader *domain.User, fileID int64, originalName string) error {
	reviewers, err := s.users.ListByRoles(ctx, domain.RoleCollector, domain.RoleDeveloper)
	if err != nil {
		return fmt.Errorf("list reviewers: %w", err)
	}

	var errs []error
	for _, reviewer := range reviewers {
		if reviewer.ID == uploader.ID {
			continue
		}
		_, err := s.Create(ctx, reviewer.ID, TypeFileUpload, "New File Uploaded",
			fmt.Sprintf("%s uploaded %s", uploader.Username, originalName), &fileID)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FileStatusChanged notifies the uploader about an approval decision.
func (s *Service) FileStatusChanged(ctx context.Context, uploadedBy string, fileID int64, originalName, status string) error {
	uploader, err := s.users.GetByUsername(ctx, uploadedBy)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup uploader: %w", err)
	}

	title := "File " + strings.ToUpper(status[:1]) + status[1:]
	_, err = s.Create(ctx, uploader.ID, TypeFileStatus, title,
		fmt.Sprintf("Your file %q has been %s", originalName, status), &fileID)
	return err
}

// FileCommented notifies the uploader about a new comment.
func (s *Service) FileCommented(ctx context.Context, author, uploadedBy string, fileID int64, originalName string) error {
	uploader, err := s.users.GetByUsername(ctx, uploadedBy)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup uploader: %w", err)
	}

	_, err = s.Create(ctx, uploader.ID, TypeFileComment, "New Comment",
		fmt.Sprintf("%s commented on %q", author, originalName), &fileID)
	return err
}

// PrivateMessage notifies a recipient about a direct or broadcast message.
func (s *Service) PrivateMessage(ctx context.Context, receiverID int64, senderName string, messageID int64, broadcast bool) error {
	title := "New Private Message"
	message := fmt.Sprintf("%s sent you a message", senderName)
	if broadcast {
		title = "Broadcast Message"
		message = fmt.Sprintf("%s sent a message to everyone", senderName)
	}
	_, err := s.Create(ctx, receiverID, TypePrivateMessage, title, message, &messageID)
	return err
}
