package messages

import (
	"time"

	"fileportal/internal/domain"
)

// MaxBroadcastLength bounds a broadcast message.
const MaxBroadcastLength = 1000

type PrivateMessage struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	SenderID   int64     `gorm:"not null;index" json:"senderId"`
	ReceiverID int64     `gorm:"not null;index" json:"receiverId"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PrivateMessage) TableName() string {
	return "private_messages"
}

// ReadStatus tracks per-recipient read state, one row per (user, message).
type ReadStatus struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	UserID    int64      `gorm:"not null;uniqueIndex:idx_read_user_message" json:"userId"`
	MessageID int64      `gorm:"not null;uniqueIndex:idx_read_user_message" json:"messageId"`
	IsRead    bool       `gorm:"not null;default:false" json:"isRead"`
	ReadAt    *time.Time `json:"readAt"`
}

func (ReadStatus) TableName() string {
	return "message_read_status"
}

// ConversationRow is a message joined with its sender's identity.
type ConversationRow struct {
	PrivateMessage
	SenderUsername string      `json:"senderUsername"`
	SenderRole     domain.Role `json:"senderRole"`
}
