package models

// CreateMessageRequest is the POST body that launches an agent run: the
// user's question plus an optional metadata bag (tender pinning, client
// hints). Metadata keys this service interprets: "tender_id".
type CreateMessageRequest struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ResumeMessageRequest answers a human-in-the-loop interrupt.
type ResumeMessageRequest struct {
	Action  string `json:"action"` // accept, edit, respond, ignore
	Content string `json:"content,omitempty"`
}
