package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersuite/tenderd/pkg/models"
)

func TestAPI_ChatLifecycle(t *testing.T) {
	app := newTestApp(t)

	chatID := app.CreateChat("tender review")

	var chat map[string]any
	app.getJSON("/api/chats/"+chatID, &chat)
	assert.Equal(t, "tender review", chat["title"])

	var listed struct {
		Chats []map[string]any `json:"chats"`
		Count int              `json:"count"`
	}
	app.getJSON("/api/chats", &listed)
	require.Equal(t, 1, listed.Count)
	assert.Equal(t, chatID, listed.Chats[0]["id"])

	req, err := http.NewRequest(http.MethodDelete, app.BaseURL+"/api/chats/"+chatID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	missing, err := http.Get(app.BaseURL + "/api/chats/" + chatID)
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestAPI_CreateMessageValidation(t *testing.T) {
	app := newTestApp(t)
	chatID := app.CreateChat("validation")

	empty := app.postJSON(fmt.Sprintf("/api/chats/%s/messages", chatID),
		models.CreateMessageRequest{Content: ""})
	empty.Body.Close()
	assert.Equal(t, http.StatusBadRequest, empty.StatusCode)

	noChat := app.postJSON("/api/chats/does-not-exist/messages",
		models.CreateMessageRequest{Content: "hello"})
	noChat.Body.Close()
	assert.Equal(t, http.StatusNotFound, noChat.StatusCode)
}

func TestAPI_ResumeValidation(t *testing.T) {
	app := newTestApp(t)
	chatID := app.CreateChat("resume-validation")

	bad := app.Resume(chatID, "msg-x", "approve", "")
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode, "unknown action is rejected before any lookup")

	missing := app.Resume(chatID, "msg-x", "accept", "")
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestAPI_HealthAndAgents(t *testing.T) {
	app := newTestApp(t)

	var health map[string]any
	app.getJSON("/api/health", &health)
	assert.Equal(t, "healthy", health["status"])

	var agents struct {
		ActiveCount int   `json:"active_count"`
		Running     []any `json:"running"`
	}
	app.getJSON("/api/agents", &agents)
	assert.Equal(t, 0, agents.ActiveCount)
	assert.NotNil(t, agents.Running)
}
