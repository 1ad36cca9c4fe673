package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(ctx context.Context, userID int64) (*UserProfile, error)
	Upsert(ctx context.Context, p *UserProfile) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Get returns nil without error when the user has no profile row yet.
func (r *gormRepository) Get(ctx context.Context, userID int64) (*UserProfile, error) {
	var p UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *gormRepository) Upsert(ctx context.Context, p *UserProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"full_name": p.FullName,
			"email":     p.Email,
		}),
	}).Create(p).Error
}
