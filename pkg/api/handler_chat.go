package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/driver"
	"github.com/tendersuite/tenderd/pkg/models"
)

const maxMessageContentLen = 100_000

var resumeActions = map[string]struct{}{
	"accept": {}, "edit": {}, "respond": {}, "ignore": {},
}

// CreateMessageResponse is the body returned when an agent run is launched.
type CreateMessageResponse struct {
	MessageID string `json:"message_id"`
	StreamURL string `json:"stream_url"`
}

func streamURL(chatID, messageID string) string {
	return fmt.Sprintf("/api/chats/%s/messages/%s/stream", chatID, messageID)
}

// createChatHandler handles POST /api/chats.
func (s *Server) createChatHandler(c *gin.Context) {
	var req models.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chatObj, err := s.chats.CreateChat(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chatObj)
}

// listChatsHandler handles GET /api/chats.
func (s *Server) listChatsHandler(c *gin.Context) {
	chats, err := s.chats.ListChats(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats, "count": len(chats)})
}

// getChatHandler handles GET /api/chats/:chat_id.
func (s *Server) getChatHandler(c *gin.Context) {
	chatObj, err := s.chats.GetChat(c.Request.Context(), c.Param("chat_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chatObj)
}

// deleteChatHandler handles DELETE /api/chats/:chat_id.
func (s *Server) deleteChatHandler(c *gin.Context) {
	if err := s.chats.DeleteChat(c.Request.Context(), c.Param("chat_id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listMessagesHandler handles GET /api/chats/:chat_id/messages.
func (s *Server) listMessagesHandler(c *gin.Context) {
	chatID := c.Param("chat_id")
	if _, err := s.chats.GetChat(c.Request.Context(), chatID); err != nil {
		mapServiceError(c, err)
		return
	}

	messages, err := s.messages.ListChatMessages(c.Request.Context(), chatID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "messages": messages, "count": len(messages)})
}

// createMessageHandler handles POST /api/chats/:chat_id/messages. It
// creates the user/assistant message pair, launches the driver as a
// detached run and returns the stream URL. Everything that can fail the
// request fails here; after StartAgent the client learns about problems
// from the event log.
func (s *Server) createMessageHandler(c *gin.Context) {
	chatID := c.Param("chat_id")
	if _, err := s.chats.GetChat(c.Request.Context(), chatID); err != nil {
		mapServiceError(c, err)
		return
	}

	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if len(req.Content) > maxMessageContentLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content exceeds maximum length of 100,000 characters"})
		return
	}

	history, err := s.messages.ListChatMessages(c.Request.Context(), chatID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	firstTurn := len(history) == 0

	_, assistantMsg, err := s.messages.CreateMessagePair(c.Request.Context(), chatID, req.Content, req.Metadata)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	tenderID, _ := req.Metadata["tender_id"].(string)
	params := driver.RunParams{
		ChatID:    chatID,
		MessageID: assistantMsg.ID,
		Query:     req.Content,
		TenderID:  tenderID,
		ThreadID:  chatID,
		FirstTurn: firstTurn,
	}
	_, _, err = s.registry.StartAgent(assistantMsg.ID, chatID, func(ctx context.Context) error {
		return s.driver.Run(ctx, params)
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is shutting down"})
		return
	}

	c.JSON(http.StatusCreated, CreateMessageResponse{
		MessageID: assistantMsg.ID,
		StreamURL: streamURL(chatID, assistantMsg.ID),
	})
}

// resumeMessageHandler handles POST /api/chats/:chat_id/messages/:message_id/resume.
// It restarts the driver for a message whose run is parked on a
// human-in-the-loop interrupt.
func (s *Server) resumeMessageHandler(c *gin.Context) {
	chatID := c.Param("chat_id")
	messageID := c.Param("message_id")

	var req models.ResumeMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := resumeActions[req.Action]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be one of accept, edit, respond, ignore"})
		return
	}

	msg, err := s.messages.GetMessage(c.Request.Context(), messageID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if msg.ChatID != chatID {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	interrupted, _ := msg.Metadata["interrupted"].(bool)
	threadID, _ := msg.Metadata["thread_id"].(string)
	if !interrupted || threadID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "message has no pending interrupt"})
		return
	}
	if s.registry.IsRunning(messageID) {
		c.JSON(http.StatusConflict, gin.H{"error": "agent is already running for this message"})
		return
	}

	params := driver.RunParams{
		ChatID:    chatID,
		MessageID: messageID,
		ThreadID:  threadID,
		Resume:    &agent.ResumeCommand{Action: req.Action, Content: req.Content},
	}
	_, _, err = s.registry.StartAgent(messageID, chatID, func(ctx context.Context) error {
		return s.driver.Run(ctx, params)
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is shutting down"})
		return
	}

	c.JSON(http.StatusOK, CreateMessageResponse{
		MessageID: messageID,
		StreamURL: streamURL(chatID, messageID),
	})
}
