package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jsplashe/fridge-app-v2/internal/services"
)

func recipeApp(upstream http.HandlerFunc, apiKey string) (*fiber.App, *httptest.Server) {
	server := httptest.NewServer(upstream)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := &Handler{
		recipes: services.NewSpoonacularServiceWithBaseURL(apiKey, "example.com", server.URL),
	}
	app.Post("/api/find-real-recipes", h.FindRealRecipes)
	return app, server
}

func TestFindRealRecipesSuccess(t *testing.T) {
	app, server := recipeApp(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": 7, "title": "Chicken Salad", "readyInMinutes": 20, "servings": 2}]}`))
	}, "good-key")
	defer server.Close()

	resp, parsed := postJSON(t, app, "/api/find-real-recipes", `{"mealName": "Chicken Salad"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
}

func TestFindRealRecipesEmptyName(t *testing.T) {
	calls := 0
	app, server := recipeApp(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "good-key")
	defer server.Close()

	resp, parsed := postJSON(t, app, "/api/find-real-recipes", `{"mealName": ""}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, parsed.Error, "mealName")
	assert.Equal(t, 0, calls, "no upstream call should be made for an empty name")
}

func TestFindRealRecipesRejectedKeyIncludesDiagnostics(t *testing.T) {
	app, server := recipeApp(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "You are not subscribed to this API."}`))
	}, "abcdefghijklmnop")
	defer server.Close()

	resp, parsed := postJSON(t, app, "/api/find-real-recipes", `{"mealName": "pasta"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	details, ok := parsed.Details.(map[string]interface{})
	require.True(t, ok, "diagnostics payload expected")
	assert.Equal(t, true, details["configured"])
	assert.Equal(t, "abcde", details["first_five"])
	assert.Equal(t, "lmnop", details["last_five"])
	assert.NotContains(t, parsed.Error, "abcdefghijklmnop")
}

func TestFindRealRecipesMissingKey(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := &Handler{recipes: services.NewSpoonacularService("", "example.com")}
	app.Post("/api/find-real-recipes", h.FindRealRecipes)

	resp, parsed := postJSON(t, app, "/api/find-real-recipes", `{"mealName": "pasta"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, parsed.Error, "RAPIDAPI_KEY")
}
