package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"fileportal/internal/domain"
)

func setup(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &Message{}))
	return NewService(NewRepository(db), nil), db
}

func user(name string, role domain.Role) *domain.User {
	return &domain.User{Username: name, Role: role}
}

func TestPostValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, user("user1", domain.RoleUser1), "   ", "", "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.Post(ctx, user("user1", domain.RoleUser1), strings.Repeat("a", 1001), "", "")
	assert.ErrorIs(t, err, ErrContentTooLong)

	msg, err := svc.Post(ctx, user("user1", domain.RoleUser1), "hello", "", "")
	assert.NoError(t, err)
	assert.Equal(t, VisibilityGroup, msg.Visibility)
	assert.Equal(t, domain.RoleUser1, msg.AuthorRole)
}

func TestPostAsTargetGroup(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	// Elevated roles may post into a chosen group.
	msg, err := svc.Post(ctx, user("developer", domain.RoleDeveloper), "announcement", "", "user2")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser2, msg.AuthorRole)

	// Ordinary users cannot escape their own group.
	msg, err = svc.Post(ctx, user("user1", domain.RoleUser1), "sneaky", "", "user2")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser1, msg.AuthorRole)
}

func TestListScopesByGroup(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, user("user1", domain.RoleUser1), "from group one", "", "")
	assert.NoError(t, err)
	_, err = svc.Post(ctx, user("user2", domain.RoleUser2), "from group two", "", "")
	assert.NoError(t, err)

	own, err := svc.List(ctx, user("user1", domain.RoleUser1), "")
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "from group one", own[0].Content)

	// Elevated with no view pin sees everything.
	all, err := svc.List(ctx, user("collector", domain.RoleCollector), "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// Elevated pinned to a group sees only that group.
	pinned, err := svc.List(ctx, user("collector", domain.RoleCollector), "user2")
	assert.NoError(t, err)
	assert.Len(t, pinned, 1)
	assert.Equal(t, "from group two", pinned[0].Content)
}

func TestLegacyRowsFallBackToAuthorRole(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	assert.NoError(t, db.Create(&domain.User{Username: "user1", Role: domain.RoleUser1}).Error)
	assert.NoError(t, db.Exec(
		"INSERT INTO chat_messages (content, author, author_role, visibility) VALUES (?, ?, '', 'group')",
		"old message", "user1").Error)

	own, err := svc.List(ctx, user("user1", domain.RoleUser1), "")
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, domain.RoleUser1, own[0].AuthorRole)
}

func TestHubPublishReachesGroupSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1), group: "user1"}
	hub.register <- client

	hub.Publish(&Message{ID: 1, Content: "hi", Author: "user1", AuthorRole: domain.RoleUser1})

	payload := <-client.send
	assert.Contains(t, string(payload), `"content":"hi"`)
}
