package agent

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// VirtualContextRoot is the path the graph sees its pre-loaded context
// files under, regardless of where they live on this host.
const VirtualContextRoot = "/workspace/context"

// contextFileNames are the analysis artifacts seeded into the graph's
// virtual filesystem when present.
var contextFileNames = []string{
	"tender_summary.md",
	"supplier_profile.md",
	"file_index.json",
}

const clusterIDFileName = "cluster_id.txt"

// ContextBuilder assembles the per-tender context handed to the graph:
// the virtual filesystem seed, the cluster id, and the enhanced query.
type ContextBuilder struct {
	root string
}

// NewContextBuilder creates a builder reading artifacts from root. An
// empty root disables file seeding; the graph still gets the raw query.
func NewContextBuilder(root string) *ContextBuilder {
	return &ContextBuilder{root: root}
}

// Assemble returns the query to send, the virtual filesystem seed and the
// cluster id. On the first turn of a chat the query is wrapped in a
// tender_context block carrying the tender summary and file index so the
// graph starts grounded; later turns rely on the checkpointed thread.
// Files and cluster id are seeded on every turn so checkpoint restores
// never lose them.
func (b *ContextBuilder) Assemble(query string, firstTurn bool) (string, map[string]string, string) {
	if b.root == "" {
		return query, nil, ""
	}

	files := make(map[string]string)
	for _, name := range contextFileNames {
		content, err := os.ReadFile(filepath.Join(b.root, name))
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("Failed to read context file", "file", name, "error", err)
			}
			continue
		}
		files[filepath.Join(VirtualContextRoot, name)] = string(content)
	}

	clusterID := ""
	if content, err := os.ReadFile(filepath.Join(b.root, clusterIDFileName)); err == nil {
		clusterID = strings.TrimSpace(string(content))
	}

	if len(files) == 0 {
		files = nil
	}
	if !firstTurn {
		return query, files, clusterID
	}
	return enhanceQuery(query, files), files, clusterID
}

// enhanceQuery prepends the tender summary and file index to a first-turn
// query inside a tender_context block.
func enhanceQuery(query string, files map[string]string) string {
	summary := files[filepath.Join(VirtualContextRoot, "tender_summary.md")]
	index := files[filepath.Join(VirtualContextRoot, "file_index.json")]
	if summary == "" && index == "" {
		return query
	}

	var sb strings.Builder
	sb.WriteString("<tender_context>\n")
	if summary != "" {
		sb.WriteString("## Tender Summary\n")
		sb.WriteString(summary)
		sb.WriteString("\n")
	}
	if index != "" {
		sb.WriteString("## File Index\n")
		sb.WriteString(index)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "</tender_context>\n\n%s", query)
	return sb.String()
}
