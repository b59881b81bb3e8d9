package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foden303/moderation/internal/detect"
)

// guardServer fakes an OpenAI-compatible chat completions endpoint that
// answers with a fixed guard completion per request text.
func guardServer(t *testing.T, completions map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		content, ok := completions[req.Messages[0].Content]
		if !ok {
			content = "Safety: Safe\nCategories: None"
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestTextEngineInfer(t *testing.T) {
	srv := guardServer(t, map[string]string{
		"violent text": "Safety: Unsafe\nCategories: Violent",
		"edgy text":    "Safety: Controversial\nCategories: Politically Sensitive Topics",
	})
	defer srv.Close()

	engine := NewTextEngine(TextConfig{BaseURL: srv.URL, Model: "guard-test"})

	inputs := []detect.TextInput{
		detect.NewTextInput("hello there"),
		detect.NewTextInput("violent text"),
		detect.NewTextInput("edgy text"),
	}
	results, err := engine.Infer(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Flagged || results[0].SafetyLabel != detect.LabelSafe {
		t.Errorf("results[0] = %+v, want safe", results[0])
	}
	if !results[1].Flagged || results[1].SafetyLabel != detect.LabelUnsafe {
		t.Errorf("results[1] = %+v, want flagged unsafe", results[1])
	}
	if len(results[1].Categories) != 1 || results[1].Categories[0] != "Violent" {
		t.Errorf("results[1] categories = %v, want [Violent]", results[1].Categories)
	}
	if results[2].Flagged || results[2].SafetyLabel != detect.LabelControversial {
		t.Errorf("results[2] = %+v, want unflagged controversial", results[2])
	}
}

func TestTextEngineBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	engine := NewTextEngine(TextConfig{BaseURL: srv.URL, Model: "guard-test"})
	_, err := engine.Infer(context.Background(), []detect.TextInput{detect.NewTextInput("hi")})
	if err == nil {
		t.Fatal("expected error for 503 backend")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Errorf("error %v does not mention the backend status", err)
	}
}

func TestTextEngineNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	engine := NewTextEngine(TextConfig{BaseURL: srv.URL, Model: "guard-test"})
	_, err := engine.Infer(context.Background(), []detect.TextInput{detect.NewTextInput("hi")})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestTextEngineEmptyBatch(t *testing.T) {
	engine := NewTextEngine(TextConfig{BaseURL: "http://localhost:0", Model: "guard-test"})
	if _, err := engine.Infer(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestMockEngine(t *testing.T) {
	mock := NewTextMock()

	results, err := mock.Infer(context.Background(), []detect.TextInput{
		detect.NewTextInput("a"),
		detect.NewTextInput("b"),
	})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if mock.CallCount != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount)
	}
	if len(mock.BatchSizes) != 1 || mock.BatchSizes[0] != 2 {
		t.Errorf("BatchSizes = %v, want [2]", mock.BatchSizes)
	}

	mock.SetError("backend down")
	if _, err := mock.Infer(context.Background(), []detect.TextInput{detect.NewTextInput("c")}); err == nil {
		t.Error("expected error after SetError")
	}
	mock.ClearError()
	if _, err := mock.Infer(context.Background(), []detect.TextInput{detect.NewTextInput("d")}); err != nil {
		t.Errorf("Infer failed after ClearError: %v", err)
	}
}
