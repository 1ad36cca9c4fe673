package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fileportal/internal/domain"
)

func user(id int64, name string, role domain.Role) *domain.User {
	return &domain.User{ID: id, Username: name, Role: role}
}

func TestEffectiveRole(t *testing.T) {
	dev := user(1, "developer", domain.RoleDeveloper)
	collector := user(2, "collector", domain.RoleCollector)
	u1 := user(3, "alice", domain.RoleUser1)

	assert.Equal(t, "user2", EffectiveRole(dev, "user2"))
	assert.Equal(t, "user1", EffectiveRole(collector, "user1"))
	assert.Equal(t, "developer", EffectiveRole(dev, ""))

	// Ordinary users cannot impersonate another group.
	assert.Equal(t, "user1", EffectiveRole(u1, "user2"))
}

func TestCanViewFile_Matrix(t *testing.T) {
	dev := user(1, "developer", domain.RoleDeveloper)
	collector := user(2, "collector", domain.RoleCollector)
	alice := user(3, "alice", domain.RoleUser1)
	bob := user(4, "bob", domain.RoleUser2)

	tests := []struct {
		name         string
		actor        *domain.User
		uploadedBy   string
		uploaderRole domain.Role
		sharedWith   string
		want         bool
	}{
		{"developer sees everything", dev, "alice", domain.RoleUser1, "user1", true},
		{"collector sees everything", collector, "bob", domain.RoleUser2, "user2", true},
		{"uploader sees own file", alice, "alice", domain.RoleUser1, "user1", true},
		{"same group sees group file", alice, "carol", domain.RoleUser1, "user1", true},
		{"other group blocked", bob, "carol", domain.RoleUser1, "user1", false},
		{"shared with all visible to anyone", bob, "carol", domain.RoleUser1, "all", true},
		{"shared with actor group", bob, "carol", domain.RoleUser1, "user2", true},
		{"developer-uploaded file scoped to user2", alice, "developer", domain.RoleDeveloper, "user2", false},
		{"developer-uploaded file scoped to user2 visible to user2", bob, "developer", domain.RoleDeveloper, "user2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanViewFile(tt.actor, tt.uploadedBy, tt.uploaderRole, tt.sharedWith)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUploadFile(t *testing.T) {
	for _, role := range domain.ValidRoles() {
		assert.True(t, CanUploadFile(role), string(role))
	}
	assert.False(t, CanUploadFile(domain.Role("admin")))
	assert.False(t, CanUploadFile(domain.Role("")))
}

func TestCanSetFileStatus(t *testing.T) {
	assert.True(t, CanSetFileStatus(domain.RoleCollector))
	assert.True(t, CanSetFileStatus(domain.RoleDeveloper))
	assert.False(t, CanSetFileStatus(domain.RoleUser1))
	assert.False(t, CanSetFileStatus(domain.RoleUser2))
}

func TestCanDeleteFile(t *testing.T) {
	alice := user(3, "alice", domain.RoleUser1)
	bob := user(4, "bob", domain.RoleUser2)
	collector := user(2, "collector", domain.RoleCollector)

	assert.True(t, CanDeleteFile(alice, "alice"))
	assert.False(t, CanDeleteFile(bob, "alice"))
	assert.True(t, CanDeleteFile(collector, "alice"))
	assert.True(t, CanDeleteFile(user(1, "developer", domain.RoleDeveloper), "alice"))
}

func TestCanCreateFolder(t *testing.T) {
	assert.True(t, CanCreateFolder(domain.RoleDeveloper))
	assert.True(t, CanCreateFolder(domain.RoleUser1))
	assert.True(t, CanCreateFolder(domain.RoleUser2))
	assert.False(t, CanCreateFolder(domain.RoleCollector))
}

func TestCanDeleteFolder(t *testing.T) {
	alice := user(3, "alice", domain.RoleUser1)
	assert.True(t, CanDeleteFolder(alice, "alice"))
	assert.False(t, CanDeleteFolder(alice, "bob"))
	assert.True(t, CanDeleteFolder(user(2, "collector", domain.RoleCollector), "bob"))
}

func TestCanManageTabs(t *testing.T) {
	alice := user(3, "alice", domain.RoleUser1)
	dev := user(1, "developer", domain.RoleDeveloper)

	assert.True(t, CanManageTabs(alice, "user1"))
	assert.False(t, CanManageTabs(alice, "user2"))
	assert.True(t, CanManageTabs(dev, "user1"))
	assert.True(t, CanManageTabs(dev, "user2"))
}

func TestVaultPredicates(t *testing.T) {
	collectorA := user(2, "collector", domain.RoleCollector)
	dev := user(1, "developer", domain.RoleDeveloper)
	alice := user(3, "alice", domain.RoleUser1)

	assert.True(t, CanAccessVault(domain.RoleCollector))
	assert.False(t, CanAccessVault(domain.RoleDeveloper))
	assert.False(t, CanAccessVault(domain.RoleUser1))

	assert.True(t, CanListCollectors(domain.RoleDeveloper))
	assert.False(t, CanListCollectors(domain.RoleCollector))

	// Collectors read only their own tab list; developers any.
	assert.True(t, CanReadVaultTabs(collectorA, 2))
	assert.False(t, CanReadVaultTabs(collectorA, 9))
	assert.True(t, CanReadVaultTabs(dev, 9))
	assert.False(t, CanReadVaultTabs(alice, 3))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(domain.RoleDeveloper))
	assert.False(t, CanManageUsers(domain.RoleCollector))
	assert.False(t, CanManageUsers(domain.RoleUser1))
}
