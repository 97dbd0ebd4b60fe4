package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChatCompletionMissingKey(t *testing.T) {
	svc := NewOpenAIService("", "https://api.openai.com/v1", "gpt-3.5-turbo")
	_, err := svc.CreateChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrOpenAIKeyMissing)
}

func TestCreateChatCompletion(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "[{\"name\": \"Omelette\"}]"}}]}`))
	}))
	defer server.Close()

	svc := NewOpenAIService("sk-test", server.URL, "gpt-3.5-turbo")
	content, err := svc.CreateChatCompletion(context.Background(), []ChatMessage{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "suggest meals"},
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"name": "Omelette"}]`, content)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotBody["model"])
}

func TestCreateChatCompletionConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable upstream

	svc := NewOpenAIService("sk-test", server.URL, "gpt-3.5-turbo")
	_, err := svc.CreateChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrOpenAIConnection)
}

func TestCreateChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	svc := NewOpenAIService("sk-test", server.URL, "gpt-3.5-turbo")
	_, err := svc.CreateChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrOpenAIEmptyOutput)
}
