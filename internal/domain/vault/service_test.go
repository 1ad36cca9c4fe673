package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
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
	svc        *Service
	db         *gorm.DB
	dir        string
	collector  *domain.User
	collector2 *domain.User
	developer  *domain.User
	user1      *domain.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &VaultFile{}, &VaultFolder{}, &VaultTab{}, &VaultComment{}))

	f := &fixture{db: db, dir: t.TempDir()}
	f.collector = createUser(t, db, "collector", domain.RoleCollector)
	f.collector2 = createUser(t, db, "collector2", domain.RoleCollector)
	f.developer = createUser(t, db, "developer", domain.RoleDeveloper)
	f.user1 = createUser(t, db, "user1", domain.RoleUser1)

	blobs, err := NewDiskStore(f.dir)
	assert.NoError(t, err)

	f.svc = NewService(NewRepository(db), blobs, repository.NewUserRepository(db), map[string]string{
		"collector": "vault123",
		"developer": "devvault456",
	})
	return f
}

func createUser(t *testing.T, db *gorm.DB, name string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Role: role}
	assert.NoError(t, db.Create(u).Error)
	return u
}

func (f *fixture) tab(t *testing.T, collector *domain.User, key string) {
	t.Helper()
	_, err := f.svc.CreateTab(context.Background(), collector, key, key)
	assert.NoError(t, err)
}

func (f *fixture) upload(t *testing.T, collector *domain.User, name, category, folder string) *VaultFile {
	t.Helper()
	file, err := f.svc.Upload(context.Background(), collector, UploadInput{
		OriginalName: name,
		ContentType:  "application/octet-stream",
		Category:     category,
		FolderPath:   folder,
		Content:      strings.NewReader("secret"),
	})
	assert.NoError(t, err)
	return file
}

func TestAccessPasswordPerRole(t *testing.T) {
	f := setup(t)

	assert.NoError(t, f.svc.Access(f.collector, "vault123"))
	assert.ErrorIs(t, f.svc.Access(f.collector, "devvault456"), ErrWrongPassword)
	assert.NoError(t, f.svc.Access(f.developer, "devvault456"))
	assert.ErrorIs(t, f.svc.Access(f.user1, "vault123"), ErrNotPermitted)
}

func TestCollectorsListingIsDeveloperOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	collectors, err := f.svc.Collectors(ctx, f.developer)
	assert.NoError(t, err)
	assert.Len(t, collectors, 2)

	_, err = f.svc.Collectors(ctx, f.collector)
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestTabsAreCollectorScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")
	f.tab(t, f.collector2, "archives")

	own, err := f.svc.ListTabs(ctx, f.collector)
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "confidential", own[0].TabKey)

	// Duplicate key for the same collector is rejected; same key for a
	// different collector is fine.
	_, err = f.svc.CreateTab(ctx, f.collector, "Again", "confidential")
	assert.ErrorIs(t, err, ErrTabExists)
	_, err = f.svc.CreateTab(ctx, f.collector2, "Confidential", "confidential")
	assert.NoError(t, err)
}

func TestTabReadAcrossCollectors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")

	// Developer may read any collector's tab list.
	tabs, err := f.svc.ListTabsFor(ctx, f.developer, f.collector.ID)
	assert.NoError(t, err)
	assert.Len(t, tabs, 1)

	// A collector may not read another collector's tabs.
	_, err = f.svc.ListTabsFor(ctx, f.collector2, f.collector.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)

	// Ordinary users have no vault surface at all.
	_, err = f.svc.ListTabsFor(ctx, f.user1, f.collector.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestUploadValidatesCategoryBeforeDiskWrite(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Upload(context.Background(), f.collector, UploadInput{
		OriginalName: "secret.pdf",
		Category:     "nope",
		Content:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	entries, readErr := os.ReadDir(f.dir)
	assert.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestUploadStoresUnderCollectorDirectory(t *testing.T) {
	f := setup(t)

	f.tab(t, f.collector, "confidential")
	file := f.upload(t, f.collector, "secret.pdf", "confidential", "")

	assert.Equal(t, "approved", file.Status)
	assert.Equal(t, f.collector.ID, file.CollectorID)

	path := filepath.Join(f.dir, fmt.Sprintf("collector-%d", f.collector.ID), file.Filename)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestForeignRowsSurfaceAsNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")
	file := f.upload(t, f.collector, "secret.pdf", "confidential", "")

	// Another collector sees the row as missing, not forbidden.
	_, err := f.svc.GetFile(ctx, f.collector2, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteFile(ctx, f.collector2, file.ID), ErrNotFound)

	// The owner still has it.
	row, err := f.svc.GetFile(ctx, f.collector, file.ID)
	assert.NoError(t, err)
	assert.Equal(t, "secret.pdf", row.OriginalName)

	// Non-collectors are rejected outright.
	_, err = f.svc.GetFile(ctx, f.developer, file.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestDeleteFileRemovesBlobAndComments(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")
	file := f.upload(t, f.collector, "secret.pdf", "confidential", "")

	_, err := f.svc.AddComment(ctx, f.collector, file.ID, "important")
	assert.NoError(t, err)

	assert.NoError(t, f.svc.DeleteFile(ctx, f.collector, file.ID))

	var comments int64
	assert.NoError(t, f.db.Model(&VaultComment{}).Count(&comments).Error)
	assert.Zero(t, comments)

	path := filepath.Join(f.dir, fmt.Sprintf("collector-%d", f.collector.ID), file.Filename)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFolderCascade(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")
	folder, err := f.svc.CreateFolder(ctx, f.collector, FolderInput{
		Name: "Cases", Path: "cases", Category: "confidential",
	})
	assert.NoError(t, err)

	_, err = f.svc.CreateFolder(ctx, f.collector, FolderInput{
		Name: "Cases", Path: "cases", Category: "confidential",
	})
	assert.ErrorIs(t, err, ErrFolderExists)

	f.upload(t, f.collector, "inside.pdf", "confidential", "cases")
	f.upload(t, f.collector, "nested.pdf", "confidential", "cases/2026")
	survivor := f.upload(t, f.collector, "outside.pdf", "confidential", "cases-old")

	// Foreign folder id deletes nothing.
	assert.ErrorIs(t, f.svc.DeleteFolder(ctx, f.collector2, folder.ID), ErrNotFound)

	assert.NoError(t, f.svc.DeleteFolder(ctx, f.collector, folder.ID))

	var files []VaultFile
	assert.NoError(t, f.db.Find(&files).Error)
	assert.Len(t, files, 1)
	assert.Equal(t, survivor.ID, files[0].ID)

	var folders int64
	assert.NoError(t, f.db.Model(&VaultFolder{}).Count(&folders).Error)
	assert.Zero(t, folders)
}

func TestListFilesFilteredByCategory(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.tab(t, f.collector, "confidential")
	f.tab(t, f.collector, "reports")
	f.upload(t, f.collector, "a.pdf", "confidential", "")
	f.upload(t, f.collector, "b.pdf", "reports", "")

	all, err := f.svc.ListFiles(ctx, f.collector, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	reports, err := f.svc.ListFiles(ctx, f.collector, "reports")
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "b.pdf", reports[0].OriginalName)
}
