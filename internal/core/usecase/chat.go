package usecase

import (
	"context"
	"log/slog"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
	"github.com/kirillkom/pdf-chat-assistant/internal/core/ports"
)

type ChatUseCase struct {
	store        ports.DocumentStore
	generator    ports.AnswerGenerator
	contextChars int
}

func NewChatUseCase(
	store ports.DocumentStore,
	generator ports.AnswerGenerator,
	contextChars int,
) *ChatUseCase {
	return &ChatUseCase{
		store:        store,
		generator:    generator,
		contextChars: contextChars,
	}
}

// Ask answers one question about a stored document. The store lock is
// released before the generator call; only the timestamp touch happens under
// it. Answers are never cached: every call reaches the generator.
func (uc *ChatUseCase) Ask(ctx context.Context, documentID, message string) (string, error) {
	doc, err := uc.store.Touch(ctx, documentID)
	if err != nil {
		return "", err
	}

	prompt := buildChatPrompt(doc.Content, message, uc.contextChars)

	answer, err := uc.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		slog.Error("chat_generation_failed",
			"pdf_id", documentID,
			"query", truncateRunes(message, queryLogChars),
			"error", err,
		)
		return "", domain.WrapError(domain.ErrAnswerGeneration, "ask", err)
	}

	slog.Info("chat_response_generated",
		"pdf_id", documentID,
		"query", truncateRunes(message, queryLogChars),
	)
	return answer, nil
}
