package domain

import "time"

// Session is an opaque server-side session token. Expiry is lazy: expired
// rows are deleted when seen by the resolver, not swept in the background.
type Session struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
