package tabs

import (
	"context"

	"gorm.io/gorm"

	"fileportal/internal/domain"
)

type Repository interface {
	ListByGroup(ctx context.Context, roleGroup domain.Role) ([]*CustomTab, error)
	Create(ctx context.Context, tab *CustomTab) error
	Exists(ctx context.Context, roleGroup domain.Role, tabKey string) (bool, error)
	MaxDisplayOrder(ctx context.Context, roleGroup domain.Role) (int, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListByGroup(ctx context.Context, roleGroup domain.Role) ([]*CustomTab, error) {
	var tabs []*CustomTab
	err := r.db.WithContext(ctx).
		Where("role_group = ?", roleGroup).
		Order("display_order ASC, tab_key ASC").
		Find(&tabs).Error
	return tabs, err
}

func (r *gormRepository) Create(ctx context.Context, tab *CustomTab) error {
	return r.db.WithContext(ctx).Create(tab).Error
}

func (r *gormRepository) Exists(ctx context.Context, roleGroup domain.Role, tabKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomTab{}).
		Where("role_group = ? AND tab_key = ?", roleGroup, tabKey).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) MaxDisplayOrder(ctx context.Context, roleGroup domain.Role) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&CustomTab{}).
		Where("role_group = ?", roleGroup).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}
