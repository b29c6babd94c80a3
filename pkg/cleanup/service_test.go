package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/streaming"
	testdb "github.com/tendersuite/tenderd/test/database"
)

func streamingStatus(text string) streaming.Event {
	return streaming.NewStatusEvent(text)
}

func TestService_SweepsAndPurges(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventSvc := services.NewEventService(client.Client, client.DB())
	reg := registry.New()
	ctx := context.Background()

	// A completed task old enough to sweep.
	_, _, err := reg.StartAgent("msg-done", "chat-1", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	deadline := time.Now().Add(2 * time.Second)
	for reg.IsRunning("msg-done") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	// One expired event and one fresh one.
	old := streamingStatus("old")
	old.TS = time.Now().UTC().Add(-48 * time.Hour)
	_, err = eventSvc.Append(ctx, "msg-done", "chat-1", old)
	require.NoError(t, err)
	_, err = eventSvc.Append(ctx, "msg-done", "chat-1", streamingStatus("fresh"))
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		EventTTL:      24 * time.Hour,
		SweepInterval: 10 * time.Millisecond,
		TaskMaxAge:    0,
	}, reg, eventSvc)

	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		if _, ok := reg.GetTask("msg-done"); ok {
			return false
		}
		n, err := eventSvc.CountEvents(ctx, "msg-done")
		return err == nil && n == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestService_ZeroTTLKeepsEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventSvc := services.NewEventService(client.Client, client.DB())
	reg := registry.New()
	ctx := context.Background()

	old := streamingStatus("old")
	old.TS = time.Now().UTC().Add(-30 * 24 * time.Hour)
	_, err := eventSvc.Append(ctx, "msg-1", "chat-1", old)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		EventTTL:      0,
		SweepInterval: 10 * time.Millisecond,
		TaskMaxAge:    24 * time.Hour,
	}, reg, eventSvc)
	svc.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	n, err := eventSvc.CountEvents(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_StopIsIdempotent(t *testing.T) {
	svc := NewService(&config.RetentionConfig{SweepInterval: time.Minute}, registry.New(), nil)
	svc.Stop() // never started
}
