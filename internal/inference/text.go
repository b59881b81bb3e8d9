package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/foden303/moderation/internal/detect"
)

const guardMaxTokens = 128

// TextConfig configures the guard-model backend (an OpenAI-compatible chat
// completions endpoint, e.g. vLLM serving Qwen3Guard).
type TextConfig struct {
	BaseURL string // e.g. "http://localhost:8000"
	Model   string // e.g. "Qwen/Qwen3Guard-Gen-0.6B"
	APIKey  string // optional bearer token
	Timeout time.Duration
}

// TextEngine classifies text through a guard LLM. It implements
// Engine[detect.TextInput, detect.TextResult].
type TextEngine struct {
	cfg    TextConfig
	client *http.Client
}

// NewTextEngine creates a TextEngine for the given endpoint.
func NewTextEngine(cfg TextConfig) *TextEngine {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &TextEngine{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Infer moderates a batch of texts. Generative guard models produce
// variable-length completions, so the batch is worked through sequentially
// within this single adapter call; any item failing fails the whole batch.
func (e *TextEngine) Infer(ctx context.Context, inputs []detect.TextInput) ([]detect.TextResult, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("empty text batch")
	}

	results := make([]detect.TextResult, len(inputs))
	for i, in := range inputs {
		content, err := e.complete(ctx, in.Text)
		if err != nil {
			return nil, err
		}
		results[i] = detect.ParseGuardOutput(content)
	}
	return results, nil
}

// complete sends one chat completion request and returns the raw completion.
func (e *TextEngine) complete(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       e.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: text}},
		MaxTokens:   guardMaxTokens,
		Temperature: 0.0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(e.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call guard backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("guard backend error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chat.Error != nil {
		return "", fmt.Errorf("guard backend error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no response choices from guard backend")
	}
	return chat.Choices[0].Message.Content, nil
}

// ModelName reports the configured guard model.
func (e *TextEngine) ModelName() string { return e.cfg.Model }

// Device reports the execution backend.
func (e *TextEngine) Device() string { return "vllm" }

// Close is a no-op; the engine holds no persistent connections.
func (e *TextEngine) Close() error { return nil }

// Ensure TextEngine implements Engine at compile time.
var _ Engine[detect.TextInput, detect.TextResult] = (*TextEngine)(nil)
