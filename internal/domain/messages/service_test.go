package messages

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"fileportal/internal/domain"
	"fileportal/internal/repository"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PrivateMessage(ctx context.Context, receiverID int64, senderName string, messageID int64, broadcast bool) error {
	args := m.Called(ctx, receiverID, senderName, messageID, broadcast)
	return args.Error(0)
}

type fixture struct {
	svc      *Service
	notifier *mockNotifier
	db       *gorm.DB
	users    map[string]*domain.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &PrivateMessage{}, &ReadStatus{}))

	users := make(map[string]*domain.User)
	for name, role := range map[string]domain.Role{
		"developer": domain.RoleDeveloper,
		"collector": domain.RoleCollector,
		"user1":     domain.RoleUser1,
		"user2":     domain.RoleUser2,
	} {
		u := &domain.User{Username: name, Role: role}
		assert.NoError(t, db.Create(u).Error)
		users[name] = u
	}

	notifier := new(mockNotifier)
	svc := NewService(NewRepository(db), repository.NewUserRepository(db), notifier)
	return &fixture{svc: svc, notifier: notifier, db: db, users: users}
}

func TestSendAndConversation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.notifier.On("PrivateMessage", mock.Anything, f.users["user2"].ID, "user1", mock.Anything, false).Return(nil)
	f.notifier.On("PrivateMessage", mock.Anything, f.users["user1"].ID, "user2", mock.Anything, false).Return(nil)

	msg, err := f.svc.Send(ctx, f.users["user1"], f.users["user2"].ID, "hello")
	assert.NoError(t, err)
	assert.NotZero(t, msg.ID)

	_, err = f.svc.Send(ctx, f.users["user2"], f.users["user1"].ID, "hi back")
	assert.NoError(t, err)

	rows, err := f.svc.Conversation(ctx, f.users["user1"], f.users["user2"].ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "user1", rows[0].SenderUsername)
	assert.Equal(t, domain.RoleUser2, rows[1].SenderRole)

	// A third party's conversation with user1 stays empty.
	other, err := f.svc.Conversation(ctx, f.users["collector"], f.users["user1"].ID)
	assert.NoError(t, err)
	assert.Empty(t, other)
	f.notifier.AssertCalled(t, "PrivateMessage", mock.Anything, f.users["user2"].ID, "user1", msg.ID, false)
}

func TestSendValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Send(ctx, f.users["user1"], f.users["user2"].ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.svc.Send(ctx, f.users["user1"], 9999, "hello")
	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

func TestBroadcastFansOutToEveryOtherUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.notifier.On("PrivateMessage", mock.Anything, mock.Anything, "developer", mock.Anything, true).Return(nil)

	sent, err := f.svc.Broadcast(ctx, f.users["developer"], "maintenance window tonight")
	assert.NoError(t, err)
	assert.Equal(t, 3, sent)

	var count int64
	assert.NoError(t, f.db.Model(&PrivateMessage{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	// The sender received nothing.
	var toSender int64
	assert.NoError(t, f.db.Model(&PrivateMessage{}).
		Where("receiver_id = ?", f.users["developer"].ID).Count(&toSender).Error)
	assert.Zero(t, toSender)
	f.notifier.AssertNumberOfCalls(t, "PrivateMessage", 3)
}

func TestUnreadCountsAndMarkRead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.notifier.On("PrivateMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Send(ctx, f.users["user1"], f.users["user2"].ID, "ping")
		assert.NoError(t, err)
	}
	_, err := f.svc.Send(ctx, f.users["collector"], f.users["user2"].ID, "report due")
	assert.NoError(t, err)

	counts, err := f.svc.UnreadCounts(ctx, f.users["user2"])
	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts[f.users["user1"].ID])
	assert.Equal(t, int64(1), counts[f.users["collector"].ID])

	assert.NoError(t, f.svc.MarkConversationRead(ctx, f.users["user2"], f.users["user1"].ID))

	counts, err = f.svc.UnreadCounts(ctx, f.users["user2"])
	assert.NoError(t, err)
	assert.NotContains(t, counts, f.users["user1"].ID)
	assert.Equal(t, int64(1), counts[f.users["collector"].ID])

	// Marking again is a no-op, not an error.
	assert.NoError(t, f.svc.MarkConversationRead(ctx, f.users["user2"], f.users["user1"].ID))
}
