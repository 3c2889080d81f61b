// Package gemini implements the answer generator on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kirillkom/pdf-chat-assistant/internal/infrastructure/resilience"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	exec   *resilience.Executor
}

func New(ctx context.Context, apiKey, modelName string, exec *resilience.Executor) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  client.GenerativeModel(modelName),
		exec:   exec,
	}, nil
}

// GenerateFromPrompt sends the prompt as a fresh chat with no history, so
// every call is a stateless exchange. The response text is returned verbatim.
func (c *Client) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	var out string
	err := c.exec.Execute(ctx, "gemini_generate", func(ctx context.Context) error {
		chat := c.model.StartChat()
		resp, err := chat.SendMessage(ctx, genai.Text(prompt))
		if err != nil {
			return fmt.Errorf("gemini generate: %w", err)
		}

		text, err := responseText(resp)
		if err != nil {
			return err
		}
		out = text
		return nil
	}, isGenerationFailure)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini generate: empty candidate list")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini generate: no text parts in response")
	}
	return b.String(), nil
}
