package profile

import "time"

type UserProfile struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
