package notifications

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

type fixture struct {
	svc   *Service
	db    *gorm.DB
	users map[string]*domain.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &Notification{}))

	users := make(map[string]*domain.User)
	for name, role := range map[string]domain.Role{
		"developer": domain.RoleDeveloper,
		"collector": domain.RoleCollector,
		"user1":     domain.RoleUser1,
	} {
		u := &domain.User{Username: name, Role: role}
		assert.NoError(t, db.Create(u).Error)
		users[name] = u
	}

	return &fixture{svc: NewService(NewRepository(db), repository.NewUserRepository(db)), db: db, users: users}
}

func TestFileUploadedNotifiesReviewersExceptUploader(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.NoError(t, f.svc.FileUploaded(ctx, f.users["user1"], 7, "report.pdf"))

	// Both elevated accounts got one, the uploader's group got none.
	for _, name := range []string{"collector", "developer"} {
		list, unread, err := f.svc.List(ctx, f.users[name])
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, int64(1), unread)
		assert.Equal(t, TypeFileUpload, list[0].Type)
		assert.Equal(t, int64(7), *list[0].RelatedID)
	}

	// An elevated uploader is skipped.
	assert.NoError(t, f.svc.FileUploaded(ctx, f.users["collector"], 8, "audit.xlsx"))
	list, _, err := f.svc.List(ctx, f.users["collector"])
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFileStatusChangedNotifiesUploader(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.NoError(t, f.svc.FileStatusChanged(ctx, "user1", 3, "report.pdf", "approved"))

	list, _, err := f.svc.List(ctx, f.users["user1"])
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "File Approved", list[0].Title)

	// Uploader account deleted meanwhile: silently dropped.
	assert.NoError(t, f.svc.FileStatusChanged(ctx, "ghost", 3, "report.pdf", "rejected"))
}

func TestMarkReadIsOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	n, err := f.svc.Create(ctx, f.users["user1"].ID, TypeFileStatus, "T", "m", nil)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.MarkRead(ctx, f.users["collector"], n.ID), ErrNotFound)
	assert.NoError(t, f.svc.MarkRead(ctx, f.users["user1"], n.ID))

	_, unread, err := f.svc.List(ctx, f.users["user1"])
	assert.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkAllReadTouchesOnlyOwnRows(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.users["user1"].ID, TypeFileStatus, "T", "m", nil)
	assert.NoError(t, err)
	_, err = f.svc.Create(ctx, f.users["collector"].ID, TypeFileStatus, "T", "m", nil)
	assert.NoError(t, err)

	assert.NoError(t, f.svc.MarkAllRead(ctx, f.users["user1"]))

	_, unread, err := f.svc.List(ctx, f.users["user1"])
	assert.NoError(t, err)
	assert.Zero(t, unread)

	_, unread, err = f.svc.List(ctx, f.users["collector"])
	assert.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	n, err := f.svc.Create(ctx, f.users["user1"].ID, TypeFileComment, "T", "m", nil)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.users["collector"], n.ID), ErrNotFound)
	assert.NoError(t, f.svc.Delete(ctx, f.users["user1"], n.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, f.users["user1"], n.ID), ErrNotFound)
}

func TestPrivateMessageTitles(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.NoError(t, f.svc.PrivateMessage(ctx, f.users["user1"].ID, "collector", 11, false))
	assert.NoError(t, f.svc.PrivateMessage(ctx, f.users["user1"].ID, "collector", 12, true))

	list, _, err := f.svc.List(ctx, f.users["user1"])
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	titles := []string{list[0].Title, list[1].Title}
	assert.Contains(t, titles, "New Private Message")
	assert.Contains(t, titles, "Broadcast Message")
}
