package ports

import (
	"context"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
)

// DocumentStore owns the id -> document mapping for the process lifetime.
type DocumentStore interface {
	// Put inserts a new record keyed by its id. The id must not already be
	// present; generation guarantees this in practice.
	Put(ctx context.Context, doc *domain.Document) error
	// Get is a pure lookup and does not mutate the record.
	Get(ctx context.Context, id string) (*domain.Document, error)
	// Touch sets LastAccessedAt to the current time and returns the updated
	// record. The read-modify-write is atomic with respect to concurrent
	// Touch/Get on the same id.
	Touch(ctx context.Context, id string) (*domain.Document, error)
}

// TextExtractor turns raw PDF bytes into plain text and a page count.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (text string, pages int, err error)
}

// AnswerGenerator creates the user-facing answer from a finished prompt.
// Each call is a fresh stateless exchange with no conversation history.
type AnswerGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}
