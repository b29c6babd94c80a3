package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContextFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAssemble_FirstTurnWrapsQuery(t *testing.T) {
	dir := t.TempDir()
	writeContextFile(t, dir, "tender_summary.md", "Road maintenance framework, 4 lots.")
	writeContextFile(t, dir, "file_index.json", `[{"file_id":"f1","name":"itt.pdf"}]`)
	writeContextFile(t, dir, "cluster_id.txt", "cluster-7\n")

	b := NewContextBuilder(dir)
	query, files, clusterID := b.Assemble("What are the award criteria?", true)

	assert.Contains(t, query, "<tender_context>")
	assert.Contains(t, query, "Road maintenance framework")
	assert.Contains(t, query, "itt.pdf")
	assert.Contains(t, query, "What are the award criteria?")
	assert.Equal(t, "cluster-7", clusterID)

	require.Len(t, files, 2)
	assert.Equal(t, "Road maintenance framework, 4 lots.",
		files[filepath.Join(VirtualContextRoot, "tender_summary.md")])
}

func TestAssemble_LaterTurnsKeepQueryRaw(t *testing.T) {
	dir := t.TempDir()
	writeContextFile(t, dir, "tender_summary.md", "summary")
	writeContextFile(t, dir, "cluster_id.txt", "cluster-7")

	b := NewContextBuilder(dir)
	query, files, clusterID := b.Assemble("Follow-up question", false)

	assert.Equal(t, "Follow-up question", query)
	// Files and cluster id are still seeded so checkpoint restores keep them.
	assert.Len(t, files, 1)
	assert.Equal(t, "cluster-7", clusterID)
}

func TestAssemble_MissingArtifacts(t *testing.T) {
	b := NewContextBuilder(t.TempDir())
	query, files, clusterID := b.Assemble("hello", true)

	assert.Equal(t, "hello", query)
	assert.Nil(t, files)
	assert.Empty(t, clusterID)
}

func TestAssemble_NoRootDisablesSeeding(t *testing.T) {
	b := NewContextBuilder("")
	query, files, clusterID := b.Assemble("hello", true)

	assert.Equal(t, "hello", query)
	assert.Nil(t, files)
	assert.Empty(t, clusterID)
}
