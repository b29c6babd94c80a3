package streaming

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeToolArgs(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		expected string
	}{
		{
			name:     "whitelisted key only",
			tool:     "search_tender_corpus",
			args:     map[string]any{"query": "payment terms", "api_key": "sk-secret"},
			expected: "query='payment terms'",
		},
		{
			name:     "unknown tool fully redacted",
			tool:     "exfiltrate",
			args:     map[string]any{"target": "everything"},
			expected: "(redacted)",
		},
		{
			name:     "empty whitelist",
			tool:     "write_todos",
			args:     map[string]any{"todos": []any{"a", "b"}},
			expected: "(no args)",
		},
		{
			name:     "whitelisted keys absent",
			tool:     "web_search",
			args:     map[string]any{"max_results": 5},
			expected: "(no args)",
		},
		{
			name:     "non-string value unquoted",
			tool:     "get_file_content",
			args:     map[string]any{"file_id": 42},
			expected: "file_id=42",
		},
		{
			name:     "task exposes only subagent type",
			tool:     "task",
			args:     map[string]any{"subagent_type": "researcher", "description": "find all suppliers"},
			expected: "subagent_type='researcher'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeToolArgs(tt.tool, tt.args))
		})
	}
}

func TestSanitizeToolArgs_TruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := SanitizeToolArgs("web_search", map[string]any{"query": long})

	assert.Equal(t, "query='"+strings.Repeat("x", 97)+"...'", got)
}

func TestSanitizeToolArgs_TruncationKeepsValidUTF8(t *testing.T) {
	// 2-byte runes positioned so a byte-indexed cut would split one.
	long := strings.Repeat("é", 80)
	got := SanitizeToolArgs("web_search", map[string]any{"query": long})

	assert.True(t, utf8.ValidString(got), "truncated summary must stay valid UTF-8")
	assert.Contains(t, got, "...")
	assert.LessOrEqual(t, len(got), len("query=''")+100)
}

func TestSanitizeToolResult(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		result   any
		expected string
	}{
		{"error prefix", "read_file", "Error: no such file", "Failed"},
		{"search with count", "search_tender_corpus", "Found 3 sections about warranties", "Found 3 results"},
		{"search without count", "search_tender_corpus", "Relevant sections follow", "Found results"},
		{"search plain", "search_tender_corpus", "nothing matched the query", "Completed search"},
		{"read multiline", "read_file", "line1\nline2\nline3", "Read 2 lines"},
		{"read single line", "read_file", "four words in here", "Read 4 words"},
		{"get file content", "get_file_content", "a\nb\nc\nd", "Read 3 lines"},
		{"write", "write_file", "ok", "Updated file"},
		{"edit", "edit_file", "done", "Updated file"},
		{"ls", "ls", "a.md\nb.md\nc.json", "Listed 3 items"},
		{"web search", "web_search", "lots of urls", "Found web results"},
		{"unknown tool", "mystery_tool", "payload", "Completed"},
		{"non-string result", "read_file", 12345, "Read file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeToolResult(tt.tool, tt.result))
		})
	}
}

func TestSanitizeErrorMessage(t *testing.T) {
	t.Run("strips path prefixes", func(t *testing.T) {
		got := SanitizeErrorMessage("open /var/lib/tenderd/secrets/creds.json: permission denied")
		assert.Equal(t, "creds.json: permission denied", got)
	})

	t.Run("keeps first line only", func(t *testing.T) {
		got := SanitizeErrorMessage("boom\ngoroutine 1 [running]:\nmain.main()")
		assert.Equal(t, "boom", got)
	})

	t.Run("caps at 200 chars", func(t *testing.T) {
		got := SanitizeErrorMessage(strings.Repeat("e", 300))
		assert.Len(t, got, 200)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("cap lands on a rune boundary", func(t *testing.T) {
		got := SanitizeErrorMessage(strings.Repeat("ü", 150))
		assert.True(t, utf8.ValidString(got), "truncated message must stay valid UTF-8")
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len(got), 200)
	})
}
