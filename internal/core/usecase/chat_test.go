package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
)

type generatorFake struct {
	answer  string
	err     error
	calls   int
	prompts []string
}

func (f *generatorFake) GenerateFromPrompt(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func seedDoc(store *storeFake, id, content string) {
	now := time.Now().UTC()
	store.docs[id] = &domain.Document{
		ID:             id,
		Filename:       "doc.pdf",
		Content:        content,
		Size:           int64(len(content)),
		PageCount:      1,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
}

func TestAskReturnsAnswerVerbatim(t *testing.T) {
	store := newStoreFake()
	seedDoc(store, "doc-1", "Hello world")
	generator := &generatorFake{answer: "It says hello world."}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	answer, err := uc.Ask(context.Background(), "doc-1", "What does it say?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != "It says hello world." {
		t.Fatalf("expected verbatim answer, got %q", answer)
	}
	if store.touched != 1 {
		t.Fatalf("expected exactly one touch, got %d", store.touched)
	}
}

func TestAskBuildsPromptFromContentAndQuestion(t *testing.T) {
	store := newStoreFake()
	seedDoc(store, "doc-1", "Hello world")
	generator := &generatorFake{answer: "ok"}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	if _, err := uc.Ask(context.Background(), "doc-1", "What does it say?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	prompt := generator.prompts[0]
	if !strings.Contains(prompt, "Hello world") {
		t.Fatalf("expected full content in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "User Question: What does it say?") {
		t.Fatalf("expected verbatim question in prompt:\n%s", prompt)
	}
}

func TestAskTruncatesContentToContextWindow(t *testing.T) {
	store := newStoreFake()
	content := strings.Repeat("a", 4000) + strings.Repeat("b", 500)
	seedDoc(store, "doc-1", content)
	generator := &generatorFake{answer: "ok"}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	if _, err := uc.Ask(context.Background(), "doc-1", "q"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	prompt := generator.prompts[0]
	if !strings.Contains(prompt, strings.Repeat("a", 4000)) {
		t.Fatalf("expected first 4000 characters in prompt")
	}
	if strings.Contains(prompt, "b") {
		t.Fatalf("content beyond the cutoff must not reach the generator")
	}
}

func TestAskUnknownDocumentIsNotFound(t *testing.T) {
	store := newStoreFake()
	generator := &generatorFake{}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	_, err := uc.Ask(context.Background(), "unknown-id", "anything")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if generator.calls != 0 {
		t.Fatalf("generator must not run for unknown documents")
	}
}

func TestAskWrapsGeneratorFailure(t *testing.T) {
	store := newStoreFake()
	seedDoc(store, "doc-1", "content")
	generator := &generatorFake{err: errors.New("api down")}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	_, err := uc.Ask(context.Background(), "doc-1", "q")
	if !domain.IsKind(err, domain.ErrAnswerGeneration) {
		t.Fatalf("expected answer generation kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "api down") {
		t.Fatalf("expected underlying cause preserved, got %v", err)
	}
}

func TestRepeatedAsksEachInvokeGenerator(t *testing.T) {
	store := newStoreFake()
	seedDoc(store, "doc-1", "content")
	generator := &generatorFake{answer: "ok"}
	uc := NewChatUseCase(store, generator, DefaultPromptContextChars)

	for i := 0; i < 3; i++ {
		if _, err := uc.Ask(context.Background(), "doc-1", "same question"); err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
	}
	if generator.calls != 3 {
		t.Fatalf("answers must not be cached: expected 3 generator calls, got %d", generator.calls)
	}
	if store.touched != 3 {
		t.Fatalf("each ask must advance the access timestamp, got %d touches", store.touched)
	}
}
