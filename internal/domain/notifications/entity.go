package notifications

import "time"

const (
	TypeFileUpload     = "file_upload"
	TypeFileStatus     = "file_status"
	TypeFileComment    = "file_comment"
	TypePrivateMessage = "private_message"
)

type Notification struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	Type      string    `gorm:"not null" json:"type"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	RelatedID *int64    `json:"relatedId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
