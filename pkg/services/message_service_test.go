package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/ent/chatmessage"
	"github.com/tendersuite/tenderd/pkg/models"
	"github.com/tendersuite/tenderd/pkg/services"
	testdb "github.com/tendersuite/tenderd/test/database"
)

func newChatForMessages(t *testing.T, chatSvc *services.ChatService) string {
	t.Helper()
	chatObj, err := chatSvc.CreateChat(context.Background(), models.CreateChatRequest{})
	require.NoError(t, err)
	return chatObj.ID
}

func TestMessageService_CreateMessagePair(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	chatID := newChatForMessages(t, chatSvc)

	userMsg, assistantMsg, err := svc.CreateMessagePair(ctx, chatID, "summarize the tender", map[string]any{
		"tender_id": "tender-1",
	})
	require.NoError(t, err)

	assert.Equal(t, chatmessage.RoleUser, userMsg.Role)
	assert.Equal(t, chatmessage.StatusCompleted, userMsg.Status)
	assert.Equal(t, "summarize the tender", userMsg.Content)
	assert.Equal(t, "tender-1", userMsg.Metadata["tender_id"])

	assert.Equal(t, chatmessage.RoleAssistant, assistantMsg.Role)
	assert.Equal(t, chatmessage.StatusPending, assistantMsg.Status)
	assert.Empty(t, assistantMsg.Content)
}

func TestMessageService_CreateMessagePair_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()

	_, _, err := svc.CreateMessagePair(ctx, "", "hello", nil)
	assert.True(t, services.IsValidationError(err))

	_, _, err = svc.CreateMessagePair(ctx, "chat-1", "", nil)
	assert.True(t, services.IsValidationError(err))
}

func TestMessageService_ListChatMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	chatID := newChatForMessages(t, chatSvc)

	_, _, err := svc.CreateMessagePair(ctx, chatID, "first question", nil)
	require.NoError(t, err)
	_, _, err = svc.CreateMessagePair(ctx, chatID, "second question", nil)
	require.NoError(t, err)

	messages, err := svc.ListChatMessages(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, "first question", messages[0].Content)
	assert.Equal(t, chatmessage.RoleAssistant, messages[1].Role)
	assert.Equal(t, "second question", messages[2].Content)
}

func TestMessageService_LifecycleTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	chatID := newChatForMessages(t, chatSvc)

	_, assistantMsg, err := svc.CreateMessagePair(ctx, chatID, "question", nil)
	require.NoError(t, err)

	require.NoError(t, svc.MarkProcessing(ctx, assistantMsg.ID))
	msg, err := svc.GetMessage(ctx, assistantMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, chatmessage.StatusProcessing, msg.Status)

	require.NoError(t, svc.MarkCompleted(ctx, assistantMsg.ID, "the answer", 1234))
	msg, err = svc.GetMessage(ctx, assistantMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, chatmessage.StatusCompleted, msg.Status)
	assert.Equal(t, "the answer", msg.Content)
	require.NotNil(t, msg.ProcessingTimeMs)
	assert.Equal(t, int64(1234), *msg.ProcessingTimeMs)
}

func TestMessageService_MarkFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	chatID := newChatForMessages(t, chatSvc)

	_, assistantMsg, err := svc.CreateMessagePair(ctx, chatID, "question", nil)
	require.NoError(t, err)

	require.NoError(t, svc.MarkFailed(ctx, assistantMsg.ID, "graph unreachable"))
	msg, err := svc.GetMessage(ctx, assistantMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, chatmessage.StatusFailed, msg.Status)
	require.NotNil(t, msg.Error)
	assert.Equal(t, "graph unreachable", *msg.Error)
}

func TestMessageService_InterruptRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	chatSvc := services.NewChatService(client.Client)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	chatID := newChatForMessages(t, chatSvc)

	_, assistantMsg, err := svc.CreateMessagePair(ctx, chatID, "question", nil)
	require.NoError(t, err)
	require.NoError(t, svc.MarkProcessing(ctx, assistantMsg.ID))

	payload := map[string]any{"action": "write_file", "file_path": "report.md"}
	require.NoError(t, svc.MarkInterrupted(ctx, assistantMsg.ID, "thread-42", payload))

	// Interrupted is resumable, not terminal: the message stays processing.
	msg, err := svc.GetMessage(ctx, assistantMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, chatmessage.StatusProcessing, msg.Status)
	assert.Equal(t, true, msg.Metadata["interrupted"])
	assert.Equal(t, "thread-42", msg.Metadata["thread_id"])
	require.NotNil(t, msg.Metadata["interrupt_payload"])

	require.NoError(t, svc.ClearInterrupt(ctx, assistantMsg.ID))
	msg, err = svc.GetMessage(ctx, assistantMsg.ID)
	require.NoError(t, err)
	assert.Equal(t, false, msg.Metadata["interrupted"])
	// The thread id survives the clear so a later resume can still find it.
	assert.Equal(t, "thread-42", msg.Metadata["thread_id"])
}

func TestMessageService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)

	_, err := svc.GetMessage(context.Background(), "no-such-message")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
