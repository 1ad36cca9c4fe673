package domain

import "time"

type Role string

const (
	RoleUser1     Role = "user1"
	RoleUser2     Role = "user2"
	RoleCollector Role = "collector"
	RoleDeveloper Role = "developer"
)

// ValidRoles is the set of roles an account may be created with.
func ValidRoles() []Role {
	return []Role{RoleUser1, RoleUser2, RoleCollector, RoleDeveloper}
}

func IsValidRole(r string) bool {
	for _, role := range ValidRoles() {
		if string(role) == r {
			return true
		}
	}
	return false
}

// IsRoleGroup reports whether r is one of the ordinary user groups that
// partition file/folder/chat visibility.
func IsRoleGroup(r string) bool {
	return r == string(RoleUser1) || r == string(RoleUser2)
}

type User struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	Username       string    `gorm:"column:username;uniqueIndex" json:"username"`
	PasswordHash   string    `gorm:"column:password" json:"-"`
	Role           Role      `gorm:"column:role" json:"role"`
	ProfilePicture string    `gorm:"column:profile_picture" json:"profile_picture,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsElevated() bool {
	return u.Role == RoleDeveloper || u.Role == RoleCollector
}
