package files

import (
	"time"

	"fileportal/internal/domain"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type File struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	Category     string    `gorm:"not null" json:"category"`
	Status       string    `gorm:"not null;default:pending" json:"status"`
	SharedWith   string    `gorm:"not null" json:"sharedWith"`
	UploadedBy   string    `gorm:"not null" json:"uploadedBy"`
	FolderPath   string    `gorm:"not null;default:''" json:"folderPath"`
	UploadDate   time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

func (File) TableName() string {
	return "files"
}

// Row is a file joined with its uploader's role and comment count, the
// shape the list and detail endpoints return.
type Row struct {
	File
	UploadedByRole domain.Role `json:"uploadedByRole"`
	CommentsCount  int64       `json:"commentsCount"`
}

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	FileID    int64     `gorm:"not null;index" json:"fileId"`
	Content   string    `gorm:"not null" json:"content"`
	Author    string    `gorm:"not null" json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}
