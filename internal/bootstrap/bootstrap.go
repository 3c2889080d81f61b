package bootstrap

import (
	"context"
	"fmt"

	"github.com/kirillkom/pdf-chat-assistant/internal/config"
	"github.com/kirillkom/pdf-chat-assistant/internal/core/ports"
	"github.com/kirillkom/pdf-chat-assistant/internal/core/usecase"
	"github.com/kirillkom/pdf-chat-assistant/internal/infrastructure/extractor/pdftext"
	"github.com/kirillkom/pdf-chat-assistant/internal/infrastructure/llm/gemini"
	"github.com/kirillkom/pdf-chat-assistant/internal/infrastructure/resilience"
	"github.com/kirillkom/pdf-chat-assistant/internal/infrastructure/store/memory"
	"github.com/kirillkom/pdf-chat-assistant/internal/observability/metrics"
)

type App struct {
	Config config.Config

	IngestUC ports.DocumentIngestor
	ChatUC   ports.ChatService
	Docs     ports.DocumentReader
	Metrics  *metrics.HTTPServerMetrics

	closeFn func()
}

// New wires the document store, the extractor and the Gemini generator into
// the two request-facing use cases. The store is an owned instance handed to
// handlers by injection, never package state.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store := memory.New()
	extractor := pdftext.New()

	breakerCfg := resilience.DefaultConfig()
	breakerCfg.Enabled = cfg.BreakerEnabled
	exec := resilience.NewExecutor(breakerCfg)

	generator, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, exec)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	ingestUC := usecase.NewIngestDocumentUseCase(store, extractor, cfg.MaxUploadBytes)
	chatUC := usecase.NewChatUseCase(store, generator, cfg.PromptContextChars)

	m := metrics.NewHTTPServerMetrics("pdf-chat-api")
	m.RegisterDocumentsStoredGauge(store.Len)

	return &App{
		Config: cfg,

		IngestUC: ingestUC,
		ChatUC:   chatUC,
		Docs:     ingestUC,
		Metrics:  m,

		closeFn: func() {
			_ = generator.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
