package vault

import "time"

// Vault rows are always scoped by collector_id; a row belonging to another
// collector is indistinguishable from a missing one.

type VaultFile struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	Category     string    `gorm:"not null" json:"category"`
	Status       string    `gorm:"not null;default:approved" json:"status"`
	CollectorID  int64     `gorm:"not null;index" json:"collectorId"`
	FolderPath   string    `gorm:"not null;default:''" json:"folderPath"`
	UploadDate   time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

func (VaultFile) TableName() string {
	return "vault_files"
}

// FileRow carries the comment count alongside the file.
type FileRow struct {
	VaultFile
	CommentsCount int64 `json:"commentsCount"`
}

type VaultFolder struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Path        string    `gorm:"not null;uniqueIndex:idx_vault_folders_scope" json:"path"`
	Category    string    `gorm:"not null;uniqueIndex:idx_vault_folders_scope" json:"category"`
	CollectorID int64     `gorm:"not null;uniqueIndex:idx_vault_folders_scope" json:"collectorId"`
	ParentPath  string    `json:"parentPath"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (VaultFolder) TableName() string {
	return "vault_folders"
}

type VaultTab struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	CollectorID  int64     `gorm:"not null;uniqueIndex:idx_vault_tabs_scope" json:"collectorId"`
	TabName      string    `gorm:"not null" json:"tabName"`
	TabKey       string    `gorm:"not null;uniqueIndex:idx_vault_tabs_scope" json:"tabKey"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (VaultTab) TableName() string {
	return "vault_custom_tabs"
}

type VaultComment struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	VaultFileID int64     `gorm:"not null;index" json:"vaultFileId"`
	Content     string    `gorm:"not null" json:"content"`
	Author      string    `gorm:"not null" json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (VaultComment) TableName() string {
	return "vault_comments"
}
