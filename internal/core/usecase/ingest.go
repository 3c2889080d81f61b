package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
	"github.com/kirillkom/pdf-chat-assistant/internal/core/ports"
)

type IngestDocumentUseCase struct {
	store     ports.DocumentStore
	extractor ports.TextExtractor
	maxBytes  int64
}

func NewIngestDocumentUseCase(
	store ports.DocumentStore,
	extractor ports.TextExtractor,
	maxBytes int64,
) *IngestDocumentUseCase {
	return &IngestDocumentUseCase{
		store:     store,
		extractor: extractor,
		maxBytes:  maxBytes,
	}
}

// Upload validates the payload, extracts its text and stores the resulting
// record. Validation short-circuits in order: filename suffix, payload size,
// extraction. Empty extracted text and a zero page count are accepted.
func (uc *IngestDocumentUseCase) Upload(
	ctx context.Context,
	filename string,
	body io.Reader,
) (*domain.Document, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, domain.WrapError(domain.ErrInvalidFileType, "upload", fmt.Errorf("filename=%s", filename))
	}

	raw, err := io.ReadAll(io.LimitReader(body, uc.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}
	if int64(len(raw)) > uc.maxBytes {
		return nil, domain.WrapError(domain.ErrPayloadTooLarge, "upload", fmt.Errorf("limit=%d bytes", uc.maxBytes))
	}

	text, pages, err := uc.extractor.Extract(ctx, raw)
	if err != nil {
		return nil, domain.WrapError(domain.ErrExtractionFailed, "upload", err)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:             uuid.NewString(),
		Filename:       filename,
		Content:        text,
		Size:           int64(len(raw)),
		PageCount:      pages,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	if err := uc.store.Put(ctx, doc); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	slog.Info("pdf_uploaded",
		"pdf_id", doc.ID,
		"filename", doc.Filename,
		"size", doc.Size,
		"page_count", doc.PageCount,
	)
	return doc, nil
}

// GetByID exposes stored metadata without touching the access timestamp.
func (uc *IngestDocumentUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return uc.store.Get(ctx, id)
}
