package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/message/domain"
	"github.com/evabo/wasteflow/internal/message/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Message{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestUnreadCount(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	send := func(recipient string) domain.Message {
		msg, err := svc.Create(ctx, domain.CreateMessageRequest{
			Sender:    "dispatch",
			Recipient: recipient,
			Subject:   "Route change",
			Content:   "Pickup moved to Thursday.",
		})
		require.NoError(t, err)
		return msg
	}

	first := send("accounts")
	send("accounts")
	send("operations")

	count, err := svc.UnreadCount(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Marking one as read drops the count.
	read := string(domain.StatusRead)
	_, err = svc.Update(ctx, domain.UpdateMessageRequest{ID: first.ID.String(), Status: &read})
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.UnreadCount(ctx, "operations")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.UnreadCount(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidRecipient)
}

func TestCreateMessage_Validation(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateMessageRequest{Recipient: "x", Subject: "s", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidSender)

	_, err = svc.Create(ctx, domain.CreateMessageRequest{Sender: "a", Subject: "s", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipient)

	_, err = svc.Create(ctx, domain.CreateMessageRequest{Sender: "a", Recipient: "x", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidSubject)

	_, err = svc.Create(ctx, domain.CreateMessageRequest{Sender: "a", Recipient: "x", Subject: "s"})
	assert.ErrorIs(t, err, domain.ErrInvalidContent)
}
