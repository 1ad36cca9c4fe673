package vault

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// tabs
	ListTabs(ctx context.Context, collectorID int64) ([]*VaultTab, error)
	CreateTab(ctx context.Context, tab *VaultTab) error
	TabExists(ctx context.Context, collectorID int64, tabKey string) (bool, error)
	MaxTabOrder(ctx context.Context, collectorID int64) (int, error)
	DeleteTab(ctx context.Context, id, collectorID int64) (int64, error)

	// files
	CreateFile(ctx context.Context, f *VaultFile) error
	GetFile(ctx context.Context, id, collectorID int64) (*FileRow, error)
	ListFiles(ctx context.Context, collectorID int64, category string) ([]*FileRow, error)
	ListFilesBySubtree(ctx context.Context, collectorID int64, folderPath string) ([]*VaultFile, error)
	DeleteFile(ctx context.Context, id, collectorID int64) error
	DeleteFilesBySubtree(ctx context.Context, collectorID int64, folderPath string) error

	// folders
	CreateFolder(ctx context.Context, f *VaultFolder) error
	GetFolder(ctx context.Context, id, collectorID int64) (*VaultFolder, error)
	ListFolders(ctx context.Context, collectorID int64) ([]*VaultFolder, error)
	FolderExists(ctx context.Context, collectorID int64, path, category string) (bool, error)
	DeleteFolderSubtree(ctx context.Context, collectorID int64, path string) error

	// comments
	ListComments(ctx context.Context, fileID int64) ([]*VaultComment, error)
	CreateComment(ctx context.Context, c *VaultComment) error
	DeleteComments(ctx context.Context, fileIDs []int64) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListTabs(ctx context.Context, collectorID int64) ([]*VaultTab, error) {
	var tabs []*VaultTab
	err := r.db.WithContext(ctx).
		Where("collector_id = ?", collectorID).
		Order("display_order ASC, tab_key ASC").
		Find(&tabs).Error
	return tabs, err
}

func (r *gormRepository) CreateTab(ctx context.Context, tab *VaultTab) error {
	return r.db.WithContext(ctx).Create(tab).Error
}

func (r *gormRepository) TabExists(ctx context.Context, collectorID int64, tabKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&VaultTab{}).
		Where("collector_id = ? AND tab_key = ?", collectorID, tabKey).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) MaxTabOrder(ctx context.Context, collectorID int64) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&VaultTab{}).
		Where("collector_id = ?", collectorID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *gormRepository) DeleteTab(ctx context.Context, id, collectorID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND collector_id = ?", id, collectorID).
		Delete(&VaultTab{})
	return res.RowsAffected, res.Error
}

func (r *gormRepository) fileQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&VaultFile{}).
		Select("vault_files.*, " +
			"(SELECT COUNT(*) FROM vault_comments WHERE vault_comments.vault_file_id = vault_files.id) AS comments_count")
}

func (r *gormRepository) CreateFile(ctx context.Context, f *VaultFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *gormRepository) GetFile(ctx context.Context, id, collectorID int64) (*FileRow, error) {
	var row FileRow
	err := r.fileQuery(ctx).
		Where("vault_files.id = ? AND vault_files.collector_id = ?", id, collectorID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &row, err
}

func (r *gormRepository) ListFiles(ctx context.Context, collectorID int64, category string) ([]*FileRow, error) {
	q := r.fileQuery(ctx).Where("vault_files.collector_id = ?", collectorID)
	if category != "" {
		q = q.Where("vault_files.category = ?", category)
	}

	var rows []*FileRow
	err := q.Order("vault_files.upload_date DESC").Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListFilesBySubtree(ctx context.Context, collectorID int64, folderPath string) ([]*VaultFile, error) {
	var list []*VaultFile
	err := r.db.WithContext(ctx).
		Where("collector_id = ? AND (folder_path = ? OR folder_path LIKE ?)",
			collectorID, folderPath, folderPath+"/%").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) DeleteFile(ctx context.Context, id, collectorID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND collector_id = ?", id, collectorID).
		Delete(&VaultFile{}).Error
}

func (r *gormRepository) DeleteFilesBySubtree(ctx context.Context, collectorID int64, folderPath string) error {
	return r.db.WithContext(ctx).
		Where("collector_id = ? AND (folder_path = ? OR folder_path LIKE ?)",
			collectorID, folderPath, folderPath+"/%").
		Delete(&VaultFile{}).Error
}

func (r *gormRepository) CreateFolder(ctx context.Context, f *VaultFolder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *gormRepository) GetFolder(ctx context.Context, id, collectorID int64) (*VaultFolder, error) {
	var folder VaultFolder
	err := r.db.WithContext(ctx).
		Where("id = ? AND collector_id = ?", id, collectorID).
		First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &folder, err
}

func (r *gormRepository) ListFolders(ctx context.Context, collectorID int64) ([]*VaultFolder, error) {
	var list []*VaultFolder
	err := r.db.WithContext(ctx).
		Where("collector_id = ?", collectorID).
		Order("category ASC, path ASC").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) FolderExists(ctx context.Context, collectorID int64, path, category string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&VaultFolder{}).
		Where("collector_id = ? AND path = ? AND category = ?", collectorID, path, category).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) DeleteFolderSubtree(ctx context.Context, collectorID int64, path string) error {
	return r.db.WithContext(ctx).
		Where("collector_id = ? AND (path = ? OR path LIKE ?)", collectorID, path, path+"/%").
		Delete(&VaultFolder{}).Error
}

func (r *gormRepository) ListComments(ctx context.Context, fileID int64) ([]*VaultComment, error) {
	var list []*VaultComment
	err := r.db.WithContext(ctx).
		Where("vault_file_id = ?", fileID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *gormRepository) CreateComment(ctx context.Context, c *VaultComment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) DeleteComments(ctx context.Context, fileIDs []int64) error {
	if len(fileIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("vault_file_id IN ?", fileIDs).Delete(&VaultComment{}).Error
}
