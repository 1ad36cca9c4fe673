package tabs

import (
	"context"
	"fmt"
	"strings"

	"fileportal/internal/access"
	"fileportal/internal/domain"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, roleGroup domain.Role) ([]*CustomTab, error) {
	if !domain.IsRoleGroup(string(roleGroup)) {
		return nil, ErrInvalidRole
	}
	return s.repo.ListByGroup(ctx, roleGroup)
}

// Create registers a new category tab, appended after the current last one.
func (s *Service) Create(ctx context.Context, actor *domain.User, roleGroup domain.Role, tabName, tabKey string) (*CustomTab, error) {
	if !domain.IsRoleGroup(string(roleGroup)) {
		return nil, ErrInvalidRole
	}
	if !access.CanManageTabs(actor, string(roleGroup)) {
		return nil, ErrNotPermitted
	}

	tabName = strings.TrimSpace(tabName)
	tabKey = strings.TrimSpace(tabKey)
	if tabName == "" || tabKey == "" {
		return nil, ErrEmptyTab
	}

	exists, err := s.repo.Exists(ctx, roleGroup, tabKey)
	if err != nil {
		return nil, fmt.Errorf("check tab: %w", err)
	}
	if exists {
		return nil, ErrTabExists
	}

	max, err := s.repo.MaxDisplayOrder(ctx, roleGroup)
	if err != nil {
		return nil, fmt.Errorf("next display order: %w", err)
	}

	tab := &CustomTab{
		RoleGroup:    roleGroup,
		TabName:      tabName,
		TabKey:       tabKey,
		DisplayOrder: max + 1,
	}
	if err := s.repo.Create(ctx, tab); err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}
	return tab, nil
}

// CategoryExists is the validation gate used by the file and folder services.
func (s *Service) CategoryExists(ctx context.Context, roleGroup domain.Role, category string) (bool, error) {
	return s.repo.Exists(ctx, roleGroup, category)
}
