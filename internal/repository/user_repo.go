package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fileportal/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return &u, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return &u, err
}

// ExistsByUsername checks username uniqueness, optionally ignoring one user id
// (used by admin edit).
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// ListByRoles returns users holding any of the given roles.
func (r *UserRepository) ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).Where("role IN ?", roles).Order("username ASC").Find(&users).Error
	return users, err
}

// ListOthers returns every user except the given one (broadcast recipients).
func (r *UserRepository) ListOthers(ctx context.Context, excludeID int64) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).Where("id != ?", excludeID).Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

func (r *UserRepository) UpdateProfilePicture(ctx context.Context, id int64, path string) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("profile_picture", path).Error
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{}).Error
}
