package chat

import (
	"context"
	"fmt"
	"strings"

	"fileportal/internal/access"
	"fileportal/internal/domain"
)

const listLimit = 100

type Service struct {
	repo Repository
	hub  *Hub
}

func NewService(repo Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// List returns the latest messages visible to the actor, oldest first.
// Elevated roles see everything unless they pin a group via view; ordinary
// users always see their own group.
func (s *Service) List(ctx context.Context, actor *domain.User, view string) ([]*Message, error) {
	if actor.IsElevated() {
		if view != "" {
			return s.repo.ListByGroup(ctx, domain.Role(view), listLimit)
		}
		return s.repo.ListAll(ctx, listLimit)
	}
	return s.repo.ListByGroup(ctx, actor.Role, listLimit)
}

// Post stores a message under the actor's effective role group and pushes
// it to websocket subscribers of that group.
func (s *Service) Post(ctx context.Context, actor *domain.User, content, visibility, targetRole string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}
	if visibility == "" {
		visibility = VisibilityGroup
	}

	msg := &Message{
		Content:    content,
		Author:     actor.Username,
		AuthorRole: domain.Role(access.EffectiveRole(actor, targetRole)),
		Visibility: visibility,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(msg)
	}
	return msg, nil
}
