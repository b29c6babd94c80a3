// Package models defines request and response shapes shared between the
// HTTP layer and the service layer.
package models

// CreateChatRequest creates a new chat, optionally pre-pinned to a tender.
type CreateChatRequest struct {
	Title    string `json:"title,omitempty"`
	TenderID string `json:"tender_id,omitempty"`
}
