package tabs

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
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&CustomTab{}))
	return NewService(NewRepository(db))
}

func developer() *domain.User {
	return &domain.User{ID: 1, Username: "developer", Role: domain.RoleDeveloper}
}

func TestCreateAssignsSequentialDisplayOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, developer(), domain.RoleUser1, "Daily", "daily")
	assert.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)

	second, err := svc.Create(ctx, developer(), domain.RoleUser1, "Weekly", "weekly")
	assert.NoError(t, err)
	assert.Equal(t, 2, second.DisplayOrder)

	// Independent group starts from 1 again.
	other, err := svc.Create(ctx, developer(), domain.RoleUser2, "Forms", "forms")
	assert.NoError(t, err)
	assert.Equal(t, 1, other.DisplayOrder)
}

func TestCreateRejectsDuplicateKey(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, developer(), domain.RoleUser1, "Daily", "daily")
	assert.NoError(t, err)

	_, err = svc.Create(ctx, developer(), domain.RoleUser1, "Daily Again", "daily")
	assert.ErrorIs(t, err, ErrTabExists)

	// Same key in another group is fine.
	_, err = svc.Create(ctx, developer(), domain.RoleUser2, "Daily", "daily")
	assert.NoError(t, err)
}

func TestCreatePermissions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user1 := &domain.User{ID: 2, Username: "user1", Role: domain.RoleUser1}
	_, err := svc.Create(ctx, user1, domain.RoleUser1, "Mine", "mine")
	assert.NoError(t, err)

	_, err = svc.Create(ctx, user1, domain.RoleUser2, "Theirs", "theirs")
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, developer(), "manager", "X", "x")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Create(ctx, developer(), domain.RoleUser1, "  ", "x")
	assert.ErrorIs(t, err, ErrEmptyTab)
}

func TestListOrdersByDisplayOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, key := range []string{"zeta", "alpha", "mid"} {
		_, err := svc.Create(ctx, developer(), domain.RoleUser1, key, key)
		assert.NoError(t, err)
	}

	tabs, err := svc.List(ctx, domain.RoleUser1)
	assert.NoError(t, err)
	assert.Len(t, tabs, 3)
	assert.Equal(t, "zeta", tabs[0].TabKey)
	assert.Equal(t, "alpha", tabs[1].TabKey)
	assert.Equal(t, "mid", tabs[2].TabKey)
}

func TestCategoryExists(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, developer(), domain.RoleUser1, "Daily", "daily")
	assert.NoError(t, err)

	ok, err := svc.CategoryExists(ctx, domain.RoleUser1, "daily")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CategoryExists(ctx, domain.RoleUser2, "daily")
	assert.NoError(t, err)
	assert.False(t, ok)
}
