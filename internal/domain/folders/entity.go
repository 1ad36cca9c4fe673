package folders

import (
	"time"

	"fileportal/internal/domain"
)

type Folder struct {
	ID         int64       `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"not null" json:"name"`
	Path       string      `gorm:"not null;uniqueIndex:idx_folders_path_cat_group" json:"path"`
	Category   string      `gorm:"not null;uniqueIndex:idx_folders_path_cat_group" json:"category"`
	RoleGroup  domain.Role `gorm:"not null;uniqueIndex:idx_folders_path_cat_group" json:"roleGroup"`
	CreatedBy  string      `gorm:"not null" json:"createdBy"`
	ParentPath string      `json:"parentPath"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (Folder) TableName() string {
	return "folders"
}
