package chat

import (
	"time"

	"fileportal/internal/domain"
)

// VisibilityGroup scopes a message to its author's role group.
const VisibilityGroup = "group"

// MaxContentLength bounds a single chat message.
const MaxContentLength = 1000

type Message struct {
	ID         int64       `gorm:"primaryKey" json:"id"`
	Content    string      `gorm:"not null" json:"content"`
	Author     string      `gorm:"not null" json:"author"`
	AuthorRole domain.Role `gorm:"not null" json:"authorRole"`
	Visibility string      `gorm:"not null;default:group" json:"visibility"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (Message) TableName() string {
	return "chat_messages"
}
