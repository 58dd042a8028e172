package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var got gemini.GenerateRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/"+gemini.DefaultModel+":generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "mocked "}, {"text": "response"}]}}],
			"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 2, "totalTokenCount": 6}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			System:      "answer in JSON",
			Messages:    []gemini.Message{{Role: "user", Text: "Hello world"}},
			Temperature: 0.7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response" {
			t.Errorf("unexpected text %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 6 {
			t.Errorf("expected 6 tokens, got %d", resp.Usage.TotalTokens)
		}
		if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "answer in JSON" {
			t.Errorf("system instruction not sent: %+v", got.SystemInstruction)
		}
		if got.GenerationConfig == nil || got.GenerationConfig.Temperature != 0.7 {
			t.Errorf("generation config not sent: %+v", got.GenerationConfig)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
