package store

import (
	"time"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
)

// Session is the durable header for one conversation.
type Session struct {
	ID        string
	Stage     domain.Stage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Turn is one message in a session's append-only log. Seq is assigned by the
// store in append order and never reused.
type Turn struct {
	SessionID  string
	Seq        int
	Role       string
	Content    string
	ToolCalls  []provider.ToolCall
	ToolCallID string
	CreatedAt  time.Time
}

// Message converts the stored turn into the provider wire shape.
func (t Turn) Message() provider.Message {
	return provider.Message{
		Role:       t.Role,
		Content:    t.Content,
		ToolCalls:  t.ToolCalls,
		ToolCallID: t.ToolCallID,
	}
}

// Storage defines session persistence. Reads and writes for one session are
// serialized by the caller; the store only guarantees per-statement atomicity.
type Storage interface {
	CreateSession(session *Session) error
	GetSession(id string) (*Session, error)
	UpdateSession(session *Session) error

	// AppendTurns adds turns to the end of the session's log, preserving
	// the given order.
	AppendTurns(sessionID string, turns []Turn) error

	// ListTurns returns the full log in append order.
	ListTurns(sessionID string) ([]Turn, error)

	Close() error
}

// NotFoundError distinguishes a missing session from a store failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "session not found: " + e.ID
}
