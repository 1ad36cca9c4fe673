package messages

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

// UserStore resolves receivers and enumerates broadcast recipients.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListOthers(ctx context.Context, excludeID int64) ([]*domain.User, error)
}

// Notifier signals a recipient about a new private message. Failures are
// logged, never propagated.
type Notifier interface {
	PrivateMessage(ctx context.Context, receiverID int64, senderName string, messageID int64, broadcast bool) error
}

type Service struct {
	repo     Repository
	users    UserStore
	notifier Notifier
}

func NewService(repo Repository, users UserStore, notifier Notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

func (s *Service) Send(ctx context.Context, sender *domain.User, receiverID int64, content string) (*PrivateMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("lookup receiver: %w", err)
	}

	msg := &PrivateMessage{SenderID: sender.ID, ReceiverID: receiverID, Content: content}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	if err := s.notifier.PrivateMessage(ctx, receiverID, sender.Username, msg.ID, false); err != nil {
		log.Printf("notify message %d: %v", msg.ID, err)
	}
	return msg, nil
}

// Conversation returns both directions between the actor and the peer,
// oldest first.
func (s *Service) Conversation(ctx context.Context, actor *domain.User, peerID int64) ([]*ConversationRow, error) {
	return s.repo.Conversation(ctx, actor.ID, peerID)
}

// Broadcast sends one copy of the message to every other user. Each
// recipient gets its own message row and notification; a failure midway
// leaves earlier deliveries in place.
func (s *Service) Broadcast(ctx context.Context, sender *domain.User, content string) (int, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	if len(content) > MaxBroadcastLength {
		return 0, ErrContentTooLong
	}

	recipients, err := s.users.ListOthers(ctx, sender.ID)
	if err != nil {
		return 0, fmt.Errorf("list recipients: %w", err)
	}
	if len(recipients) == 0 {
		return 0, ErrNoRecipients
	}

	sent := 0
	for _, recipient := range recipients {
		msg := &PrivateMessage{SenderID: sender.ID, ReceiverID: recipient.ID, Content: content}
		if err := s.repo.Create(ctx, msg); err != nil {
			return sent, fmt.Errorf("broadcast to user %d: %w", recipient.ID, err)
		}
		sent++
		if err := s.notifier.PrivateMessage(ctx, recipient.ID, sender.Username, msg.ID, true); err != nil {
			log.Printf("notify broadcast message %d: %v", msg.ID, err)
		}
	}
	return sent, nil
}

func (s *Service) UnreadCounts(ctx context.Context, actor *domain.User) (map[int64]int64, error) {
	return s.repo.UnreadCounts(ctx, actor.ID)
}

func (s *Service) MarkConversationRead(ctx context.Context, actor *domain.User, senderID int64) error {
	return s.repo.MarkConversationRead(ctx, senderID, actor.ID)
}
