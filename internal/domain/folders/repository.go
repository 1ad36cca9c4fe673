package folders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fileportal/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, folder *Folder) error
	GetByID(ctx context.Context, id int64) (*Folder, error)
	ListByGroup(ctx context.Context, roleGroup domain.Role) ([]*Folder, error)
	Exists(ctx context.Context, path, category string, roleGroup domain.Role) (bool, error)
	DeleteSubtree(ctx context.Context, path string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, folder *Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id int64) (*Folder, error) {
	var folder Folder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFolderNotFound
	}
	return &folder, err
}

func (r *gormRepository) ListByGroup(ctx context.Context, roleGroup domain.Role) ([]*Folder, error) {
	var list []*Folder
	err := r.db.WithContext(ctx).
		Where("role_group = ?", roleGroup).
		Order("category ASC, path ASC").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) Exists(ctx context.Context, path, category string, roleGroup domain.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Folder{}).
		Where("path = ? AND category = ? AND role_group = ?", path, category, roleGroup).
		Count(&count).Error
	return count > 0, err
}

// DeleteSubtree removes the folder at path and everything nested under it.
func (r *gormRepository) DeleteSubtree(ctx context.Context, path string) error {
	return r.db.WithContext(ctx).
		Where("path = ? OR path LIKE ?", path, path+"/%").
		Delete(&Folder{}).Error
}
