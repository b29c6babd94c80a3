// Package api is the HTTP surface: chat CRUD, message creation that
// launches agent runs, SSE streaming with resume, event replay, and
// human-in-the-loop resume.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/tendersuite/tenderd/pkg/database"
	"github.com/tendersuite/tenderd/pkg/driver"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/watcher"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db       *database.Client
	chats    *services.ChatService
	messages *services.MessageService
	events   *services.EventService
	registry *registry.Registry
	driver   *driver.Driver
	watcher  *watcher.Watcher
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	chats *services.ChatService,
	messages *services.MessageService,
	events *services.EventService,
	reg *registry.Registry,
	drv *driver.Driver,
	w *watcher.Watcher,
) *Server {
	return &Server{
		db:       db,
		chats:    chats,
		messages: messages,
		events:   events,
		registry: reg,
		driver:   drv,
		watcher:  w,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	api := router.Group("/api")
	{
		api.GET("/health", s.healthHandler)
		api.GET("/agents", s.listAgentsHandler)

		api.POST("/chats", s.createChatHandler)
		api.GET("/chats", s.listChatsHandler)
		api.GET("/chats/:chat_id", s.getChatHandler)
		api.DELETE("/chats/:chat_id", s.deleteChatHandler)

		api.GET("/chats/:chat_id/messages", s.listMessagesHandler)
		api.POST("/chats/:chat_id/messages", s.createMessageHandler)
		api.GET("/chats/:chat_id/messages/:message_id/stream", s.streamHandler)
		api.POST("/chats/:chat_id/messages/:message_id/resume", s.resumeMessageHandler)

		api.GET("/messages/:message_id/events", s.listEventsHandler)
	}

	return router
}
