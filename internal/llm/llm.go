package llm

import (
	"context"
	"errors"
)

// Message is a single role-tagged prompt message. Ordering is significant:
// providers apply chat-history semantics positionally.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Roles understood by chat-completion providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client abstracts the external completion provider. Implementations make a
// single attempt per call; retrying is a caller decision.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", ErrNotConfigured
}
