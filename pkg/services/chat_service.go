// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tendersuite/tenderd/ent"
	"github.com/tendersuite/tenderd/ent/chat"
	"github.com/tendersuite/tenderd/ent/chatmessage"
	"github.com/tendersuite/tenderd/ent/messagecounter"
	"github.com/tendersuite/tenderd/ent/messageevent"
	"github.com/tendersuite/tenderd/pkg/models"
)

// ChatService manages tender conversation chats
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// CreateChat creates a new chat, optionally pre-pinned to a tender
func (s *ChatService) CreateChat(httpCtx context.Context, req models.CreateChatRequest) (*ent.Chat, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Chat.Create().
		SetID(uuid.New().String())
	if req.Title != "" {
		create.SetTitle(req.Title)
	}
	if req.TenderID != "" {
		create.SetTenderID(req.TenderID)
	}

	chatObj, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	return chatObj, nil
}

// GetChat retrieves a chat by ID
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*ent.Chat, error) {
	chatObj, err := s.client.Chat.Get(ctx, chatID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return chatObj, nil
}

// ListChats returns all chats, newest first
func (s *ChatService) ListChats(ctx context.Context) ([]*ent.Chat, error) {
	chats, err := s.client.Chat.Query().
		Order(ent.Desc(chat.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

// DeleteChat removes a chat, its messages (cascade) and its event log.
// Event and counter rows have no foreign key so replay can outlive message
// deletion; they are removed here explicitly.
func (s *ChatService) DeleteChat(httpCtx context.Context, chatID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	if _, err := s.GetChat(ctx, chatID); err != nil {
		return err
	}

	messageIDs, err := s.client.ChatMessage.Query().
		Where(chatmessage.ChatIDEQ(chatID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list chat messages: %w", err)
	}

	if _, err := s.client.MessageEvent.Delete().
		Where(messageevent.ChatIDEQ(chatID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chat events: %w", err)
	}

	if len(messageIDs) > 0 {
		if _, err := s.client.MessageCounter.Delete().
			Where(messagecounter.IDIn(messageIDs...)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete message counters: %w", err)
		}
	}

	if err := s.client.Chat.DeleteOneID(chatID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	return nil
}

// BindTenderScope enforces the single-tender invariant for a chat: the
// first pinned tender binds the scope, any later disagreement is a
// violation. An empty tenderID is a no-op (unpinned message).
func (s *ChatService) BindTenderScope(ctx context.Context, chatID, tenderID string) error {
	if tenderID == "" {
		return nil
	}

	// Bind only when not yet bound; the predicate makes the first-wins
	// race safe without a transaction.
	n, err := s.client.Chat.Update().
		Where(chat.IDEQ(chatID), chat.TenderIDIsNil()).
		SetTenderID(tenderID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bind tender scope: %w", err)
	}
	if n == 1 {
		return nil
	}

	chatObj, err := s.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	if chatObj.TenderID == nil || *chatObj.TenderID != tenderID {
		return fmt.Errorf("%w: chat %s is bound to a different tender", ErrScopeViolation, chatID)
	}
	return nil
}
