package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/streaming"
	testdb "github.com/tendersuite/tenderd/test/database"
)

// Two replicas over one schema: the run executes on replica A, the client
// replays the stream from replica B. B never held the registry entry for
// the run, so everything it serves comes out of the shared event log.
func TestStream_ReplayAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	writer := newTestApp(t, WithDBClient(shared.NewClient(t)))
	reader := newTestApp(t, WithDBClient(shared.NewClient(t)))

	writer.Graph.Enqueue(
		agent.AssistantStep{SnapshotID: "s1", Text: "Checking delivery clauses."},
		agent.FinalStep{Text: "Both offers satisfy the delivery clause."},
	)

	chatID := writer.CreateChat("cross-replica")
	messageID := writer.PostMessage(chatID, "Check the delivery clauses", nil)
	written := writer.WaitForTerminal(messageID)

	stream := openStream(t, reader, chatID, messageID, "")
	events := stream.CollectUntilEnd(t)

	requireDenseSeqs(t, events, 0)
	require.Len(t, events, len(written))
	require.Equal(t, "start", string(events[0].Type))
	end := events[len(events)-1]
	assert.Equal(t, streaming.EndCompleted, end.Status)
	assert.Equal(t, "Both offers satisfy the delivery clause.", concatContent(events))

	// Resuming mid-log works from the replica that never ran the agent.
	resumed := openStream(t, reader, chatID, messageID, events[0].ID)
	tail := resumed.CollectUntilEnd(t)
	requireDenseSeqs(t, tail, 1)
	require.Len(t, tail, len(written)-1)
}
