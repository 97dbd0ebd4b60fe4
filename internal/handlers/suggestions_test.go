package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

type stubSuggestions struct {
	out   []models.MealSuggestion
	err   error
	calls int
}

func (s *stubSuggestions) GenerateSuggestions(ctx context.Context, fridgeItems []string, mealCount int, mealTypes []string) ([]models.MealSuggestion, error) {
	s.calls++
	return s.out, s.err
}

func suggestionApp(stub *stubSuggestions) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := &Handler{suggestions: stub}
	app.Post("/api/meal-suggestions", h.MealSuggestions)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestMealSuggestionsSuccess(t *testing.T) {
	stub := &stubSuggestions{out: []models.MealSuggestion{{ID: "abc", Name: "Omelette"}}}
	app := suggestionApp(stub)

	resp, parsed := postJSON(t, app, "/api/meal-suggestions", `{"fridgeItems": ["eggs", "cheese"]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
	assert.Equal(t, 1, stub.calls)
}

func TestMealSuggestionsEmptyItems(t *testing.T) {
	stub := &stubSuggestions{}
	app := suggestionApp(stub)

	resp, parsed := postJSON(t, app, "/api/meal-suggestions", `{"fridgeItems": []}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, parsed.Error, "fridgeItems")
	assert.Equal(t, 0, stub.calls, "no model call should be made for invalid input")
}

func TestMealSuggestionsNonArrayItems(t *testing.T) {
	stub := &stubSuggestions{}
	app := suggestionApp(stub)

	resp, _ := postJSON(t, app, "/api/meal-suggestions", `{"fridgeItems": "milk"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, stub.calls)
}

func TestMealSuggestionsMissingKey(t *testing.T) {
	stub := &stubSuggestions{err: services.ErrOpenAIKeyMissing}
	app := suggestionApp(stub)

	resp, parsed := postJSON(t, app, "/api/meal-suggestions", `{"fridgeItems": ["eggs"]}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, parsed.Error, "OPENAI_API_KEY")
}

func TestMealSuggestionsUpstreamDown(t *testing.T) {
	stub := &stubSuggestions{err: services.ErrOpenAIConnection}
	app := suggestionApp(stub)

	resp, _ := postJSON(t, app, "/api/meal-suggestions", `{"fridgeItems": ["eggs"]}`)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
