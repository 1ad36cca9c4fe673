package chat

import (
	"context"

	"gorm.io/gorm"

	"fileportal/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListByGroup(ctx context.Context, roleGroup domain.Role, limit int) ([]*Message, error)
	ListAll(ctx context.Context, limit int) ([]*Message, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByGroup returns a group's messages oldest-first. Legacy rows without
// an author_role fall back to the author's current role.
func (r *gormRepository) ListByGroup(ctx context.Context, roleGroup domain.Role, limit int) ([]*Message, error) {
	var list []*Message
	err := r.db.WithContext(ctx).Model(&Message{}).
		Select("chat_messages.*, COALESCE(NULLIF(chat_messages.author_role, ''), users.role) AS author_role").
		Joins("LEFT JOIN users ON users.username = chat_messages.author").
		Where("COALESCE(NULLIF(chat_messages.author_role, ''), users.role) = ?", roleGroup).
		Order("chat_messages.created_at ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *gormRepository) ListAll(ctx context.Context, limit int) ([]*Message, error) {
	var list []*Message
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
