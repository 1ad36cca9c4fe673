package messages

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, m *PrivateMessage) error
	Conversation(ctx context.Context, userA, userB int64) ([]*ConversationRow, error)
	UnreadCounts(ctx context.Context, userID int64) (map[int64]int64, error)
	MarkConversationRead(ctx context.Context, senderID, readerID int64) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, m *PrivateMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) Conversation(ctx context.Context, userA, userB int64) ([]*ConversationRow, error) {
	var rows []*ConversationRow
	err := r.db.WithContext(ctx).Model(&PrivateMessage{}).
		Select("private_messages.*, sender.username AS sender_username, sender.role AS sender_role").
		Joins("JOIN users sender ON sender.id = private_messages.sender_id").
		Where("(private_messages.sender_id = ? AND private_messages.receiver_id = ?) OR "+
			"(private_messages.sender_id = ? AND private_messages.receiver_id = ?)",
			userA, userB, userB, userA).
		Order("private_messages.created_at ASC").
		Find(&rows).Error
	return rows, err
}

// UnreadCounts groups the user's unread inbound messages by sender. A
// message with no read-status row counts as unread.
func (r *gormRepository) UnreadCounts(ctx context.Context, userID int64) (map[int64]int64, error) {
	var rows []struct {
		SenderID int64
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&PrivateMessage{}).
		Select("private_messages.sender_id, COUNT(*) AS count").
		Joins("LEFT JOIN message_read_status mrs ON mrs.message_id = private_messages.id AND mrs.user_id = ?", userID).
		Where("private_messages.receiver_id = ? AND (mrs.is_read IS NULL OR mrs.is_read = ?)", userID, false).
		Group("private_messages.sender_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.SenderID] = row.Count
	}
	return counts, nil
}

// MarkConversationRead upserts read-status rows for every message the
// sender has sent the reader.
func (r *gormRepository) MarkConversationRead(ctx context.Context, senderID, readerID int64) error {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&PrivateMessage{}).
		Where("sender_id = ? AND receiver_id = ?", senderID, readerID).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return err
	}

	now := time.Now()
	statuses := make([]ReadStatus, 0, len(ids))
	for _, id := range ids {
		statuses = append(statuses, ReadStatus{UserID: readerID, MessageID: id, IsRead: true, ReadAt: &now})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "message_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}),
	}).Create(&statuses).Error
}
