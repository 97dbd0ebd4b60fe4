package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const openAITimeout = 30 * time.Second

var (
	ErrOpenAIKeyMissing  = errors.New("OpenAI API key is not configured")
	ErrOpenAIConnection  = errors.New("failed to connect to OpenAI service")
	ErrOpenAIEmptyOutput = errors.New("no response content received from OpenAI")
)

// ChatMessage is one message in a chat-completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter is the seam the suggestion service depends on.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
}

// OpenAIService calls an OpenAI-compatible chat-completion API.
type OpenAIService struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOpenAIService creates a client. baseURL allows pointing at any
// OpenAI-compatible endpoint (and at test servers).
func NewOpenAIService(apiKey, baseURL, model string) *OpenAIService {
	return &OpenAIService{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: openAITimeout,
		},
	}
}

// KeyConfigured reports key presence and length for the diagnostics
// endpoints without exposing the key itself.
func (s *OpenAIService) KeyConfigured() (bool, int) {
	return s.apiKey != "", len(s.apiKey)
}

// CreateChatCompletion sends the messages and returns the first choice's
// content.
func (s *OpenAIService) CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", ErrOpenAIKeyMissing
	}

	reqBody := map[string]interface{}{
		"model":       s.model,
		"messages":    messages,
		"temperature": 0.7,
		"max_tokens":  1500,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrOpenAIEmptyOutput
	}

	return completion.Choices[0].Message.Content, nil
}
