// Package e2e boots a complete tenderd instance against a real PostgreSQL
// database, with only the agent graph replaced by a scripted fake, and
// exercises the HTTP surface the way a client would.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tendersuite/tenderd/ent"
	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/api"
	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/database"
	"github.com/tendersuite/tenderd/pkg/driver"
	"github.com/tendersuite/tenderd/pkg/models"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/streaming"
	"github.com/tendersuite/tenderd/pkg/watcher"
	testdb "github.com/tendersuite/tenderd/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testStreamingConfig keeps the streaming loop fast enough for tests: tight
// polling, near-instant chunking and a heartbeat that never fires unless a
// test provokes it.
func testStreamingConfig() config.StreamingConfig {
	return config.StreamingConfig{
		QueueCapacity:       200,
		HeartbeatInterval:   time.Minute,
		PollInterval:        10 * time.Millisecond,
		MaxWait:             10 * time.Second,
		PersistRetries:      3,
		PersistRetryBackoff: 10 * time.Millisecond,
		ContentChunkWords:   1,
		ContentChunkDelay:   time.Millisecond,
	}
}

// TestApp is one tenderd instance under test.
type TestApp struct {
	DBClient *database.Client
	Ent      *ent.Client
	Graph    *ScriptedGraph
	Registry *registry.Registry
	Events   *services.EventService
	Messages *services.MessageService
	Chats    *services.ChatService

	Server  *httptest.Server
	BaseURL string

	t *testing.T
}

type testAppConfig struct {
	streaming config.StreamingConfig
	dbClient  *database.Client
	graph     *ScriptedGraph
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithStreamingConfig overrides the default fast streaming config.
func WithStreamingConfig(cfg config.StreamingConfig) TestAppOption {
	return func(c *testAppConfig) { c.streaming = cfg }
}

// WithDBClient injects a database client, letting two apps share one schema
// for multi-replica tests.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithGraph injects a shared scripted graph.
func WithGraph(g *ScriptedGraph) TestAppOption {
	return func(c *testAppConfig) { c.graph = g }
}

// newTestApp boots the full stack. Cleanup is registered on t.
func newTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	cfg := &testAppConfig{streaming: testStreamingConfig()}
	for _, opt := range opts {
		opt(cfg)
	}

	dbClient := cfg.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}

	chatService := services.NewChatService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client, dbClient.DB())

	graph := cfg.graph
	if graph == nil {
		graph = NewScriptedGraph()
	}

	reg := registry.New()
	contexts := agent.NewContextBuilder("") // no artifact seeding in e2e
	drv := driver.New(eventService, messageService, chatService, graph, contexts, cfg.streaming)
	w := watcher.New(eventService, reg, watcher.Config{
		PollInterval: cfg.streaming.PollInterval,
		MaxWait:      cfg.streaming.MaxWait,
	})

	server := api.NewServer(dbClient, chatService, messageService, eventService, reg, drv, w)
	httpServer := httptest.NewServer(server.Router())

	app := &TestApp{
		DBClient: dbClient,
		Ent:      dbClient.Client,
		Graph:    graph,
		Registry: reg,
		Events:   eventService,
		Messages: messageService,
		Chats:    chatService,
		Server:   httpServer,
		BaseURL:  httpServer.URL,
		t:        t,
	}

	t.Cleanup(func() {
		httpServer.Close()
		reg.Shutdown()
	})
	return app
}

// ──── HTTP helpers ────

func (a *TestApp) postJSON(path string, body any) *http.Response {
	a.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(a.t, err)
	resp, err := http.Post(a.BaseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(a.t, err)
	return resp
}

func (a *TestApp) getJSON(path string, out any) {
	a.t.Helper()
	resp, err := http.Get(a.BaseURL + path)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(out))
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// CreateChat creates a chat and returns its id.
func (a *TestApp) CreateChat(title string) string {
	a.t.Helper()
	resp := a.postJSON("/api/chats", models.CreateChatRequest{Title: title})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode)
	chat := decodeBody[map[string]any](a.t, resp)
	id, _ := chat["id"].(string)
	require.NotEmpty(a.t, id)
	return id
}

// PostMessage sends a user message and returns the assistant message id.
func (a *TestApp) PostMessage(chatID, content string, metadata map[string]any) string {
	a.t.Helper()
	resp := a.postJSON(fmt.Sprintf("/api/chats/%s/messages", chatID),
		models.CreateMessageRequest{Content: content, Metadata: metadata})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[api.CreateMessageResponse](a.t, resp)
	require.NotEmpty(a.t, created.MessageID)
	return created.MessageID
}

// Resume answers a pending interrupt on a message.
func (a *TestApp) Resume(chatID, messageID, action, content string) *http.Response {
	a.t.Helper()
	return a.postJSON(fmt.Sprintf("/api/chats/%s/messages/%s/resume", chatID, messageID),
		models.ResumeMessageRequest{Action: action, Content: content})
}

// GetMessage fetches one message via the chat history endpoint.
func (a *TestApp) GetMessage(chatID, messageID string) map[string]any {
	a.t.Helper()
	var out struct {
		Messages []map[string]any `json:"messages"`
	}
	a.getJSON(fmt.Sprintf("/api/chats/%s/messages", chatID), &out)
	for _, msg := range out.Messages {
		if msg["id"] == messageID {
			return msg
		}
	}
	a.t.Fatalf("message %s not found in chat %s", messageID, chatID)
	return nil
}

// ListEvents fetches the persisted event log via the replay endpoint.
func (a *TestApp) ListEvents(messageID string) []streaming.Event {
	a.t.Helper()
	var out struct {
		Events []streaming.Event `json:"events"`
	}
	a.getJSON(fmt.Sprintf("/api/messages/%s/events", messageID), &out)
	return out.Events
}

// WaitForTerminal polls the event log until an END event is persisted.
func (a *TestApp) WaitForTerminal(messageID string) []streaming.Event {
	a.t.Helper()
	var events []streaming.Event
	require.Eventually(a.t, func() bool {
		events = a.ListEvents(messageID)
		for _, evt := range events {
			if evt.Terminal() {
				return true
			}
		}
		return false
	}, 10*time.Second, 20*time.Millisecond, "no END event persisted for %s", messageID)
	return events
}
