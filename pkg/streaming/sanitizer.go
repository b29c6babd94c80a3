package streaming

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Whitelist of safe argument fields per tool. Anything not listed here is
// never echoed into the event log.
var toolArgWhitelist = map[string][]string{
	"search_tender_corpus": {"query"},
	"get_file_content":     {"file_id"},
	"web_search":           {"query"},
	"read_file":            {"file_path"},
	"write_file":           {"file_path"},
	"edit_file":            {"file_path"},
	"ls":                   {},
	"write_todos":          {},                // don't expose todo content in args
	"task":                 {"subagent_type"}, // don't expose full description
}

// Tools with a result summarization rule. Tools outside this set summarize
// to a bare "Completed".
var toolResultWhitelist = map[string]struct{}{
	"search_tender_corpus": {},
	"get_file_content":     {},
	"web_search":           {},
	"read_file":            {},
	"write_file":           {},
	"edit_file":            {},
	"ls":                   {},
}

const (
	maxArgFieldLen = 100
	maxErrorMsgLen = 200
)

// SanitizeToolArgs renders a short, single-line summary of tool arguments
// restricted to the whitelisted keys for that tool. Unknown tools are fully
// redacted; tools with no safe args report "(no args)". String values are
// truncated to 100 chars.
func SanitizeToolArgs(toolName string, args map[string]any) string {
	whitelist, ok := toolArgWhitelist[toolName]
	if !ok {
		slog.Warn("No whitelist for tool, redacting all args", "tool", toolName)
		return "(redacted)"
	}
	if len(whitelist) == 0 {
		return "(no args)"
	}

	var parts []string
	for _, key := range whitelist {
		value, present := args[key]
		if !present {
			continue
		}
		if s, isStr := value.(string); isStr {
			s = truncate(s, maxArgFieldLen)
			parts = append(parts, fmt.Sprintf("%s='%s'", key, s))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%v", key, value))
		}
	}

	if len(parts) == 0 {
		return "(no args)"
	}
	return strings.Join(parts, ", ")
}

// SanitizeToolResult reduces a raw tool result to a terse outcome label.
// The sanitizer is the only place the variance of tool output shapes is
// observed; everything downstream sees a short string.
func SanitizeToolResult(toolName string, result any) string {
	if s, ok := result.(string); ok && strings.HasPrefix(s, "Error:") {
		return "Failed"
	}

	if _, ok := toolResultWhitelist[toolName]; !ok {
		slog.Warn("No result whitelist for tool", "tool", toolName)
		return "Completed"
	}

	switch toolName {
	case "search_tender_corpus":
		s, ok := result.(string)
		if !ok {
			return "Completed"
		}
		lower := strings.ToLower(s)
		if strings.Contains(lower, "section") || strings.Contains(lower, "found") {
			words := strings.Fields(s)
			for i, word := range words {
				w := strings.ToLower(word)
				if (w == "found" || w == "identified") && i+1 < len(words) && isDigits(words[i+1]) {
					return fmt.Sprintf("Found %s results", words[i+1])
				}
			}
			return "Found results"
		}
		return "Completed search"

	case "read_file", "get_file_content":
		s, ok := result.(string)
		if !ok {
			return "Read file"
		}
		if lineCount := strings.Count(s, "\n"); lineCount > 0 {
			return fmt.Sprintf("Read %d lines", lineCount)
		}
		return fmt.Sprintf("Read %d words", len(strings.Fields(s)))

	case "write_file", "edit_file":
		return "Updated file"

	case "ls":
		s, ok := result.(string)
		if !ok {
			return "Listed directory"
		}
		lines := strings.Split(strings.TrimSpace(s), "\n")
		return fmt.Sprintf("Listed %d items", len(lines))

	case "web_search":
		return "Found web results"
	}

	return "Completed"
}

// SanitizeErrorMessage strips directory prefixes, keeps only the first line
// and caps the message at 200 chars before it reaches the event log.
func SanitizeErrorMessage(msg string) string {
	if strings.Contains(msg, "/") {
		segments := strings.Split(msg, "/")
		msg = segments[len(segments)-1]
	}
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		msg = msg[:idx]
	}
	return truncate(msg, maxErrorMsgLen)
}

// truncate caps s at max bytes with a "..." marker, backing the cut up to
// a rune boundary so the result is always valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
