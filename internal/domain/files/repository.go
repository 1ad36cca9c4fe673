package files

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fileportal/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, f *File) error
	GetRowByID(ctx context.Context, id int64) (*Row, error)
	ListAll(ctx context.Context) ([]*Row, error)
	ListByUploaderRole(ctx context.Context, role domain.Role) ([]*Row, error)
	ListVisibleTo(ctx context.Context, role domain.Role, username string) ([]*Row, error)
	ListBySubtree(ctx context.Context, folderPath string) ([]*File, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	DeleteBySubtree(ctx context.Context, folderPath string) error

	ListComments(ctx context.Context, fileID int64) ([]*Comment, error)
	CreateComment(ctx context.Context, c *Comment) error
	DeleteComments(ctx context.Context, fileIDs []int64) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// rowQuery joins each file with its uploader's role and comment count.
func (r *gormRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&File{}).
		Select("files.*, users.role AS uploaded_by_role, " +
			"(SELECT COUNT(*) FROM comments WHERE comments.file_id = files.id) AS comments_count").
		Joins("LEFT JOIN users ON users.username = files.uploaded_by")
}

func (r *gormRepository) Create(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *gormRepository) GetRowByID(ctx context.Context, id int64) (*Row, error) {
	var row Row
	err := r.rowQuery(ctx).Where("files.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	return &row, err
}

func (r *gormRepository) ListAll(ctx context.Context) ([]*Row, error) {
	var rows []*Row
	err := r.rowQuery(ctx).Order("files.upload_date DESC").Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListByUploaderRole(ctx context.Context, role domain.Role) ([]*Row, error) {
	var rows []*Row
	err := r.rowQuery(ctx).
		Where("users.role = ?", role).
		Order("files.upload_date DESC").
		Find(&rows).Error
	return rows, err
}

// ListVisibleTo applies the group visibility rule for ordinary users: files
// uploaded by their own group, shared with everyone or with their group, or
// uploaded by themselves.
func (r *gormRepository) ListVisibleTo(ctx context.Context, role domain.Role, username string) ([]*Row, error) {
	var rows []*Row
	err := r.rowQuery(ctx).
		Where("users.role = ? OR files.shared_with IN ? OR files.uploaded_by = ?",
			role, []string{"all", string(role)}, username).
		Order("files.upload_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListBySubtree(ctx context.Context, folderPath string) ([]*File, error) {
	var list []*File
	err := r.db.WithContext(ctx).
		Where("folder_path = ? OR folder_path LIKE ?", folderPath, folderPath+"/%").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&File{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&File{}).Error
}

func (r *gormRepository) DeleteBySubtree(ctx context.Context, folderPath string) error {
	return r.db.WithContext(ctx).
		Where("folder_path = ? OR folder_path LIKE ?", folderPath, folderPath+"/%").
		Delete(&File{}).Error
}

func (r *gormRepository) ListComments(ctx context.Context, fileID int64) ([]*Comment, error) {
	var list []*Comment
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) CreateComment(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) DeleteComments(ctx context.Context, fileIDs []int64) error {
	if len(fileIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("file_id IN ?", fileIDs).Delete(&Comment{}).Error
}
