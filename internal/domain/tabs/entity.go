package tabs

import (
	"time"

	"fileportal/internal/domain"
)

// CustomTab is a file/folder category registered for a role group.
type CustomTab struct {
	ID           int64       `gorm:"primaryKey" json:"id"`
	RoleGroup    domain.Role `gorm:"not null;uniqueIndex:idx_tabs_group_key" json:"roleGroup"`
	TabName      string      `gorm:"not null" json:"tabName"`
	TabKey       string      `gorm:"not null;uniqueIndex:idx_tabs_group_key" json:"tabKey"`
	DisplayOrder int         `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (CustomTab) TableName() string {
	return "custom_tabs"
}
