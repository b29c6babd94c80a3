package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/pkg/models"
	"github.com/tendersuite/tenderd/pkg/services"
	testdb "github.com/tendersuite/tenderd/test/database"
)

func TestChatService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateChat(ctx, models.CreateChatRequest{Title: "Q3 framework tender"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Q3 framework tender", created.Title)
	assert.Nil(t, created.TenderID)

	got, err := svc.GetChat(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestChatService_CreateDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)

	created, err := svc.CreateChat(context.Background(), models.CreateChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "New Chat", created.Title)
}

func TestChatService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)

	_, err := svc.GetChat(context.Background(), "no-such-chat")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestChatService_ListNewestFirst(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)
	ctx := context.Background()

	first, err := svc.CreateChat(ctx, models.CreateChatRequest{Title: "first"})
	require.NoError(t, err)
	second, err := svc.CreateChat(ctx, models.CreateChatRequest{Title: "second"})
	require.NoError(t, err)

	chats, err := svc.ListChats(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, second.ID, chats[0].ID)
	assert.Equal(t, first.ID, chats[1].ID)
}

func TestChatService_BindTenderScope(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)
	ctx := context.Background()

	chatObj, err := svc.CreateChat(ctx, models.CreateChatRequest{})
	require.NoError(t, err)

	// Unpinned messages never bind anything.
	require.NoError(t, svc.BindTenderScope(ctx, chatObj.ID, ""))
	got, err := svc.GetChat(ctx, chatObj.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TenderID)

	// First pinned tender wins.
	require.NoError(t, svc.BindTenderScope(ctx, chatObj.ID, "tender-123"))
	got, err = svc.GetChat(ctx, chatObj.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TenderID)
	assert.Equal(t, "tender-123", *got.TenderID)

	// Same tender again is fine.
	require.NoError(t, svc.BindTenderScope(ctx, chatObj.ID, "tender-123"))

	// A different tender is a scope violation and does not rebind.
	err = svc.BindTenderScope(ctx, chatObj.ID, "tender-456")
	assert.ErrorIs(t, err, services.ErrScopeViolation)
	got, err = svc.GetChat(ctx, chatObj.ID)
	require.NoError(t, err)
	assert.Equal(t, "tender-123", *got.TenderID)
}

func TestChatService_DeleteChatRemovesEverything(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	msgSvc := services.NewMessageService(client.Client)
	eventSvc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	chatObj, err := chatSvc.CreateChat(ctx, models.CreateChatRequest{})
	require.NoError(t, err)
	_, assistant, err := msgSvc.CreateMessagePair(ctx, chatObj.ID, "analyse the tender", nil)
	require.NoError(t, err)

	_, err = eventSvc.Append(ctx, assistant.ID, chatObj.ID, startEvent())
	require.NoError(t, err)
	_, err = eventSvc.Append(ctx, assistant.ID, chatObj.ID, statusEvent("working"))
	require.NoError(t, err)

	require.NoError(t, chatSvc.DeleteChat(ctx, chatObj.ID))

	_, err = chatSvc.GetChat(ctx, chatObj.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = msgSvc.GetMessage(ctx, assistant.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	n, err := eventSvc.CountEvents(ctx, assistant.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// The counter is gone too: a fresh append for the same ID starts at seq 0.
	evt, err := eventSvc.Append(ctx, assistant.ID, chatObj.ID, startEvent())
	require.NoError(t, err)
	seq, err := parseSeq(evt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestChatService_DeleteChatNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChatService(client.Client)

	err := svc.DeleteChat(context.Background(), "no-such-chat")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
