package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/streaming"
	testdb "github.com/tendersuite/tenderd/test/database"
)

func TestEventService_AppendAssignsContiguousSeqs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		evt, err := svc.Append(ctx, "msg-1", "chat-1", statusEvent(fmt.Sprintf("step %d", i)))
		require.NoError(t, err)

		seq, err := parseSeq(evt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
		assert.Equal(t, "msg-1", evt.MessageID)
		assert.Equal(t, "chat-1", evt.ChatID)
	}

	// A second message's log starts over at 0.
	evt, err := svc.Append(ctx, "msg-2", "chat-1", startEvent())
	require.NoError(t, err)
	seq, err := parseSeq(evt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestEventService_ConcurrentAppendsNoGapsNoDuplicates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := svc.Append(ctx, "msg-1", "chat-1", statusEvent(fmt.Sprintf("w%d-%d", w, i)))
				if err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent append failed: %v", err)
	}

	events, err := svc.ListEvents(ctx, "msg-1", "", 0)
	require.NoError(t, err)
	require.Len(t, events, writers*perWriter)

	seqs := make([]int64, 0, len(events))
	for _, evt := range events {
		seq, err := parseSeq(evt.ID)
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	for i, seq := range seqs {
		assert.Equal(t, int64(i), seq, "seq space must be dense with no gaps or duplicates")
	}
}

func TestEventService_ListEventsOrderedAndResumable(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	var ids []string
	appended := []streaming.Event{
		startEvent(),
		statusEvent("investigating"),
		contentEvent("partial "),
		contentEvent("answer"),
		endEvent(),
	}
	for _, evt := range appended {
		persisted, err := svc.Append(ctx, "msg-1", "chat-1", evt)
		require.NoError(t, err)
		ids = append(ids, persisted.ID)
	}

	all, err := svc.ListEvents(ctx, "msg-1", "", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, evt := range all {
		assert.Equal(t, ids[i], evt.ID)
		assert.Equal(t, appended[i].Type, evt.Type)
	}
	assert.True(t, all[4].Terminal())

	// Resume after the second event: only events with a greater seq return.
	tail, err := svc.ListEvents(ctx, "msg-1", ids[1], 0)
	require.NoError(t, err)
	require.Len(t, tail, 3)
	assert.Equal(t, ids[2], tail[0].ID)

	// Resuming from the last event yields nothing.
	empty, err := svc.ListEvents(ctx, "msg-1", ids[4], 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEventService_MalformedCursorReplaysFromBeginning(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	_, err := svc.Append(ctx, "msg-1", "chat-1", startEvent())
	require.NoError(t, err)
	_, err = svc.Append(ctx, "msg-1", "chat-1", endEvent())
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, "msg-1", "garbage-cursor", 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventService_PayloadSurvivesRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	in := streaming.NewToolStartEvent("call-1", "search_tender_corpus", `query="award criteria"`, "Searching tender corpus")
	persisted, err := svc.Append(ctx, "msg-1", "chat-1", in)
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, "msg-1", "", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, persisted.ID, got.ID)
	assert.Equal(t, streaming.TypeToolStart, got.Type)
	assert.Equal(t, "call-1", got.CallID)
	assert.Equal(t, "search_tender_corpus", got.Name)
	assert.Equal(t, `query="award criteria"`, got.ArgsSummary)
	assert.Equal(t, "Searching tender corpus", got.ArgsDisplay)
	assert.Equal(t, 2, got.V)
}

func TestEventService_CountAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Append(ctx, "msg-1", "chat-1", statusEvent("tick"))
		require.NoError(t, err)
	}

	n, err := svc.CountEvents(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	deleted, err := svc.DeleteEvents(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	n, err = svc.CountEvents(ctx, "msg-1")
	require.NoError(t, err)
	assert.Zero(t, n)

	// Deleting the counter resets the seq space.
	evt, err := svc.Append(ctx, "msg-1", "chat-1", startEvent())
	require.NoError(t, err)
	seq, err := parseSeq(evt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestEventService_PurgeExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())
	ctx := context.Background()

	old := statusEvent("old")
	old.TS = time.Now().UTC().Add(-48 * time.Hour)
	_, err := svc.Append(ctx, "msg-1", "chat-1", old)
	require.NoError(t, err)
	_, err = svc.Append(ctx, "msg-1", "chat-1", statusEvent("fresh"))
	require.NoError(t, err)

	// TTL 0 disables retention entirely.
	n, err := svc.PurgeExpiredEvents(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.PurgeExpiredEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := svc.ListEvents(ctx, "msg-1", "", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Text)
}

func TestEventService_AppendRequiresMessageID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client, client.DB())

	_, err := svc.Append(context.Background(), "", "chat-1", startEvent())
	assert.True(t, services.IsValidationError(err))
}
