package streaming

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintEventID_RoundTrip(t *testing.T) {
	for _, seq := range []int64{0, 1, 7, 42, 9999, 123456} {
		id := MintEventID(seq)

		parsed, err := ParseEventSeq(id)
		require.NoError(t, err, "id %q", id)
		assert.Equal(t, seq, parsed)
	}
}

func TestMintEventID_Format(t *testing.T) {
	id := MintEventID(7)
	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)

	assert.Equal(t, "0007", parts[1], "seq must be fixed-width")
	assert.Len(t, parts[2], 8, "random suffix is 8 hex chars")
}

func TestParseEventSeq_Malformed(t *testing.T) {
	for _, id := range []string{"", "justone", "a_b_c", "123_-1_abcd1234", "123"} {
		_, err := ParseEventSeq(id)
		require.Error(t, err, "id %q", id)
		assert.ErrorIs(t, err, ErrMalformedEventID)
	}
}

func TestEventJSON_OmitsNullFields(t *testing.T) {
	evt := NewStatusEvent("Processing...")
	evt.ID = MintEventID(3)

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, float64(2), m["v"])
	assert.Equal(t, "status", m["type"])
	assert.Equal(t, "Processing...", m["text"])
	assert.NotContains(t, m, "error")
	assert.NotContains(t, m, "items")
	assert.NotContains(t, m, "ms_total")
	assert.NotContains(t, m, "call_id")
}

func TestEventJSON_EndCarriesZeroToolCalls(t *testing.T) {
	evt := NewEndEvent(EndCompleted, 1234, 0)

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// tool_calls=0 must survive serialization, clients rely on it.
	assert.Equal(t, float64(0), m["tool_calls"])
	assert.Equal(t, float64(1234), m["ms_total"])
	assert.Equal(t, "completed", m["status"])
}

func TestNewToolStartEvent_DisplayFallsBackToName(t *testing.T) {
	evt := NewToolStartEvent("call_1", "web_search", "query='GDPR'", "")
	assert.Equal(t, "web_search", evt.ArgsDisplay)

	evt = NewToolStartEvent("call_1", "web_search", "query='GDPR'", "Searching the web")
	assert.Equal(t, "Searching the web", evt.ArgsDisplay)
}

func TestTerminal(t *testing.T) {
	assert.True(t, NewEndEvent(EndFailed, 1, 0).Terminal())
	assert.False(t, NewErrorEvent("boom").Terminal())
	assert.False(t, NewStartEvent("m", "c").Terminal())
}

func TestKnownType(t *testing.T) {
	assert.True(t, KnownType(TypeRationale), "deprecated rationale still reads")
	assert.True(t, KnownType(TypeToolEnd))
	assert.False(t, KnownType(EventType("telemetry")))
}
