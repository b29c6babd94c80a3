package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tendersuite/tenderd/ent"
	"github.com/tendersuite/tenderd/ent/chatmessage"
)

// MessageService manages chat messages and the assistant message's
// driver-owned lifecycle transitions. Mutations use a background context
// with a timeout: the driver runs detached from any HTTP request and its
// record updates must not inherit a dead request scope.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// CreateMessagePair creates the user message and the empty assistant
// message that the agent run will fill in.
func (s *MessageService) CreateMessagePair(httpCtx context.Context, chatID, content string, metadata map[string]any) (*ent.ChatMessage, *ent.ChatMessage, error) {
	if chatID == "" {
		return nil, nil, NewValidationError("chat_id", "required")
	}
	if content == "" {
		return nil, nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	userCreate := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetChatID(chatID).
		SetRole(chatmessage.RoleUser).
		SetContent(content).
		SetStatus(chatmessage.StatusCompleted)
	if metadata != nil {
		userCreate.SetMetadata(metadata)
	}
	userMsg, err := userCreate.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user message: %w", err)
	}

	assistantMsg, err := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetChatID(chatID).
		SetRole(chatmessage.RoleAssistant).
		SetStatus(chatmessage.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create assistant message: %w", err)
	}

	return userMsg, assistantMsg, nil
}

// GetMessage retrieves a message by ID
func (s *MessageService) GetMessage(ctx context.Context, messageID string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// ListChatMessages returns a chat's messages in creation order
func (s *MessageService) ListChatMessages(ctx context.Context, chatID string) ([]*ent.ChatMessage, error) {
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.ChatIDEQ(chatID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// MarkProcessing transitions the assistant message to processing
func (s *MessageService) MarkProcessing(_ context.Context, messageID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetStatus(chatmessage.StatusProcessing).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark message processing: %w", err)
	}
	return nil
}

// MarkCompleted stores the final content and processing time
func (s *MessageService) MarkCompleted(_ context.Context, messageID, content string, processingTimeMs int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetStatus(chatmessage.StatusCompleted).
		SetContent(content).
		SetProcessingTimeMs(processingTimeMs).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark message completed: %w", err)
	}
	return nil
}

// MarkFailed transitions the assistant message to failed with an error
func (s *MessageService) MarkFailed(_ context.Context, messageID, errMsg string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetStatus(chatmessage.StatusFailed).
		SetError(errMsg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark message failed: %w", err)
	}
	return nil
}

// MarkInterrupted records human-in-the-loop interrupt metadata. The message
// stays in processing: it is resumable, not terminal.
func (s *MessageService) MarkInterrupted(_ context.Context, messageID, threadID string, interruptPayload map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get message for interrupt: %w", err)
	}

	metadata := msg.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["interrupted"] = true
	metadata["thread_id"] = threadID
	if interruptPayload != nil {
		metadata["interrupt_payload"] = interruptPayload
	}

	err = s.client.ChatMessage.UpdateOneID(messageID).
		SetStatus(chatmessage.StatusProcessing).
		SetMetadata(metadata).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark message interrupted: %w", err)
	}
	return nil
}

// ClearInterrupt flips the interrupted flag off when a resume run starts
func (s *MessageService) ClearInterrupt(_ context.Context, messageID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get message for interrupt clear: %w", err)
	}
	if msg.Metadata == nil {
		return nil
	}

	metadata := msg.Metadata
	metadata["interrupted"] = false

	err = s.client.ChatMessage.UpdateOneID(messageID).
		SetMetadata(metadata).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear interrupt: %w", err)
	}
	return nil
}
