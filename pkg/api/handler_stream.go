package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tendersuite/tenderd/pkg/streaming"
	"github.com/tendersuite/tenderd/pkg/watcher"
)

// streamHandler handles GET /api/chats/:chat_id/messages/:message_id/stream.
// It attaches a watcher to the message's event log and serves it as SSE
// until a terminal event. Reconnecting clients resume via the standard
// Last-Event-ID header (or a `since` query parameter).
func (s *Server) streamHandler(c *gin.Context) {
	chatID := c.Param("chat_id")
	messageID := c.Param("message_id")

	msg, err := s.messages.GetMessage(c.Request.Context(), messageID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if msg.ChatID != chatID {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	sinceID := c.GetHeader("Last-Event-ID")
	if sinceID == "" {
		sinceID = c.Query("since")
	}

	// Watcher accounting is advisory: a message whose agent is long gone
	// has no registry entry, and the stream still works from persistence.
	watcherID := uuid.New().String()
	if s.registry.RegisterWatcher(messageID, watcherID) {
		defer s.registry.UnregisterWatcher(messageID, watcherID)
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	sink := func(evt streaming.Event) error {
		if err := sse.Encode(c.Writer, sse.Event{
			Id:    evt.ID,
			Event: string(evt.Type),
			Data:  evt,
		}); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	err = s.watcher.Watch(c.Request.Context(), messageID, sinceID, sink)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		slog.Info("Stream client disconnected", "message_id", messageID)
	case errors.Is(err, watcher.ErrMaxWaitExceeded):
		slog.Warn("Stream hit max wait", "message_id", messageID)
	default:
		slog.Warn("Stream ended with error", "message_id", messageID, "error", err)
	}
}

// listEventsHandler handles GET /api/messages/:message_id/events. It is
// the non-streaming replay read: everything after `since`, in order.
func (s *Server) listEventsHandler(c *gin.Context) {
	messageID := c.Param("message_id")
	if _, err := s.messages.GetMessage(c.Request.Context(), messageID); err != nil {
		mapServiceError(c, err)
		return
	}

	events, err := s.events.ListEvents(c.Request.Context(), messageID, c.Query("since"), 0)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message_id": messageID,
		"events":     events,
		"count":      len(events),
	})
}
