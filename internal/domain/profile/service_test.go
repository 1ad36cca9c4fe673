package profile

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
	"fileportal/internal/domain/auth"
	"fileportal/internal/domain/files"
	"fileportal/internal/repository"
)

func setup(t *testing.T) (*Service, *domain.User, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &UserProfile{}))

	hash, err := auth.HashPassword("user123")
	assert.NoError(t, err)
	user := &domain.User{Username: "user1", PasswordHash: hash, Role: domain.RoleUser1}
	assert.NoError(t, db.Create(user).Error)

	blobs, err := files.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	return NewService(NewRepository(db), repository.NewUserRepository(db), blobs), user, db
}

func TestGetReturnsEmptyProfileWhenMissing(t *testing.T) {
	svc, user, _ := setup(t)

	p, err := svc.Get(context.Background(), user)
	assert.NoError(t, err)
	assert.Zero(t, p.ID)
	assert.Equal(t, user.ID, p.UserID)
}

func TestUpdateUpserts(t *testing.T) {
	svc, user, _ := setup(t)
	ctx := context.Background()

	p, err := svc.Update(ctx, user, "First Last", "first@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "First Last", p.FullName)

	// Second update replaces fields on the same row.
	p2, err := svc.Update(ctx, user, "Renamed", "new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, p.ID, p2.ID)
	assert.Equal(t, "Renamed", p2.FullName)
	assert.Equal(t, "new@example.com", p2.Email)
}

func TestChangePassword(t *testing.T) {
	svc, user, db := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangePassword(ctx, user, "wrong", "newpass123"), ErrWrongPassword)
	assert.ErrorIs(t, svc.ChangePassword(ctx, user, "user123", "abc"), ErrWeakPassword)
	assert.NoError(t, svc.ChangePassword(ctx, user, "user123", "newpass123"))

	var updated domain.User
	assert.NoError(t, db.First(&updated, user.ID).Error)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "newpass123"))
}

func TestUpdatePicture(t *testing.T) {
	svc, user, db := setup(t)
	ctx := context.Background()

	_, err := svc.UpdatePicture(ctx, user, "notes.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	path, err := svc.UpdatePicture(ctx, user, "me.png", "image/png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/api/files/profile/profile_"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	var updated domain.User
	assert.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, path, updated.ProfilePicture)
}
