package ports

import (
	"context"
	"io"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
)

// DocumentIngestor is the inbound contract for PDF upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*domain.Document, error)
}

// ChatService answers a question about a previously ingested document.
type ChatService interface {
	Ask(ctx context.Context, documentID, message string) (string, error)
}

// DocumentReader is the inbound read model for document metadata.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}
