package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Extract_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("Expected model llama3.1:8b, got %s", req.Model)
		}
		if req.Format != "json" {
			t.Errorf("Expected json format constraint, got %q", req.Format)
		}
		if req.Stream {
			t.Error("Expected non-streaming request")
		}

		resp := ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        `{"name":"BETA TRANS S.R.L.","mainInfo":{"cui":"RO87654321"}}`,
			Done:            true,
			PromptEvalCount: 50,
			EvalCount:       30,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{
		BaseURL: server.URL,
		Model:   "llama3.1:8b",
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Extract(context.Background(), ExtractRequest{Text: "Societatea BETA TRANS S.R.L."})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if resp.Record == nil || resp.Record.Name != "BETA TRANS S.R.L." {
		t.Errorf("Unexpected record: %+v", resp.Record)
	}
	if resp.TokensUsed != 80 {
		t.Errorf("Expected 80 tokens, got %d", resp.TokensUsed)
	}
	if resp.Model != "llama3.1:8b" {
		t.Errorf("Unexpected model: %s", resp.Model)
	}
}

func TestOllamaProvider_Extract_RequiresModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Extract(context.Background(), ExtractRequest{Text: "x"})
	if err == nil {
		t.Fatal("Expected error for missing model, got nil")
	}
}

func TestOllamaProvider_Extract_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing", Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Extract(context.Background(), ExtractRequest{Text: "x"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("Expected path /api/tags, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available")
	}
}
