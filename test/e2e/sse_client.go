package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tendersuite/tenderd/pkg/streaming"
)

// sseStream is a minimal SSE client over the message stream endpoint.
// Close cancels the request, which the server observes as a client
// disconnect.
type sseStream struct {
	resp   *http.Response
	reader *bufio.Reader
	cancel context.CancelFunc
}

// openStream connects to the SSE endpoint. lastEventID, when non-empty, is
// sent as the Last-Event-ID resume header.
func openStream(t *testing.T, app *TestApp, chatID, messageID, lastEventID string) *sseStream {
	t.Helper()

	url := fmt.Sprintf("%s/api/chats/%s/messages/%s/stream", app.BaseURL, chatID, messageID)
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	if lastEventID != "" {
		req.Header.Set("Last-Event-ID", lastEventID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		require.NoError(t, err)
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	s := &sseStream{resp: resp, reader: bufio.NewReader(resp.Body), cancel: cancel}
	t.Cleanup(s.Close)
	return s
}

// Close disconnects the client.
func (s *sseStream) Close() {
	s.cancel()
	s.resp.Body.Close()
}

// Next reads one SSE frame and decodes its data as a streaming event.
// Returns false when the server closes the stream or the client is closed.
func (s *sseStream) Next() (streaming.Event, bool) {
	var data strings.Builder
	sawData := false

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return streaming.Event{}, false
		}
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			if !sawData {
				continue // comment-only or keepalive frame
			}
			var evt streaming.Event
			if err := json.Unmarshal([]byte(data.String()), &evt); err != nil {
				return streaming.Event{}, false
			}
			return evt, true
		}

		if value, ok := sseField(line, "data"); ok {
			if sawData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			sawData = true
		}
		// id and event fields are carried inside the JSON payload too, so
		// the data field alone is enough for assertions.
	}
}

// CollectUntilEnd reads frames until a terminal END event arrives.
func (s *sseStream) CollectUntilEnd(t *testing.T) []streaming.Event {
	t.Helper()

	done := make(chan []streaming.Event, 1)
	go func() {
		var events []streaming.Event
		for {
			evt, ok := s.Next()
			if !ok {
				done <- events
				return
			}
			events = append(events, evt)
			if evt.Terminal() {
				done <- events
				return
			}
		}
	}()

	select {
	case events := <-done:
		require.NotEmpty(t, events, "stream closed without any events")
		require.True(t, events[len(events)-1].Terminal(), "stream closed without an END event")
		return events
	case <-time.After(10 * time.Second):
		s.Close()
		t.Fatal("timed out waiting for END event on stream")
		return nil
	}
}

// sseField parses "name: value" lines, tolerating the optional space after
// the colon.
func sseField(line, name string) (string, bool) {
	if !strings.HasPrefix(line, name+":") {
		return "", false
	}
	return strings.TrimPrefix(strings.TrimPrefix(line, name+":"), " "), true
}
