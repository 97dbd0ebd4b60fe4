package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

const (
	spoonacularTimeout = 10 * time.Second
	defaultRecipeLimit = 10
	complexSearchPath  = "/recipes/complexSearch"
)

var ErrRecipeKeyMissing = errors.New("RapidAPI key is not configured")

// RecipeSearcher is the seam reconciliation and handlers depend on.
type RecipeSearcher interface {
	SearchRecipeByName(ctx context.Context, mealName string, limit int) ([]models.Recipe, error)
}

// SpoonacularService searches real recipes through the Spoonacular API on
// RapidAPI.
type SpoonacularService struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
}

// NewSpoonacularService creates a client for the given RapidAPI host.
func NewSpoonacularService(apiKey, host string) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  apiKey,
		host:    host,
		baseURL: "https://" + host,
		httpClient: &http.Client{
			Timeout: spoonacularTimeout,
		},
	}
}

// NewSpoonacularServiceWithBaseURL is used by tests to point at a fake
// upstream.
func NewSpoonacularServiceWithBaseURL(apiKey, host, baseURL string) *SpoonacularService {
	s := NewSpoonacularService(apiKey, host)
	s.baseURL = baseURL
	return s
}

// KeyConfigured reports key presence and length for diagnostics.
func (s *SpoonacularService) KeyConfigured() (bool, int) {
	return s.apiKey != "", len(s.apiKey)
}

// KeyDiagnostics returns a redacted description of the configured key for
// key-misconfiguration triage. The middle of the key is never included.
func (s *SpoonacularService) KeyDiagnostics() map[string]interface{} {
	if s.apiKey == "" {
		return map[string]interface{}{"configured": false}
	}
	first, last := s.apiKey, s.apiKey
	if len(s.apiKey) > 5 {
		first = s.apiKey[:5]
		last = s.apiKey[len(s.apiKey)-5:]
	}
	return map[string]interface{}{
		"configured": true,
		"length":     len(s.apiKey),
		"first_five": first,
		"last_five":  last,
	}
}

type spoonacularSearchResponse struct {
	Results []struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		Image          string `json:"image"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
	} `json:"results"`
	Offset       int    `json:"offset"`
	Number       int    `json:"number"`
	TotalResults int    `json:"totalResults"`
	Message      string `json:"message"`
}

// SearchRecipeByName queries complexSearch and maps results to the minimal
// Recipe shape.
func (s *SpoonacularService) SearchRecipeByName(ctx context.Context, mealName string, limit int) ([]models.Recipe, error) {
	if s.apiKey == "" {
		return nil, ErrRecipeKeyMissing
	}
	if mealName == "" {
		return nil, apperrors.NewValidation("meal name is required for recipe search")
	}
	if limit <= 0 {
		limit = defaultRecipeLimit
	}

	params := url.Values{}
	params.Set("query", mealName)
	params.Set("number", strconv.Itoa(limit))
	params.Set("offset", "0")

	reqURL := s.baseURL + complexSearchPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.host)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body spoonacularSearchResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)

		code := apperrors.CodeUnknown
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = apperrors.CodeUnauthorized
		case http.StatusNotFound:
			code = apperrors.CodeNotFound
		}

		msg := body.Message
		if msg == "" {
			msg = fmt.Sprintf("failed to search recipes: %s", resp.Status)
		}
		return nil, apperrors.NewApi(msg, code, map[string]interface{}{"status": resp.StatusCode})
	}

	var searchResp spoonacularSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		recipes = append(recipes, models.Recipe{
			ID:             strconv.Itoa(r.ID),
			Title:          r.Title,
			Image:          r.Image,
			ReadyInMinutes: r.ReadyInMinutes,
			Servings:       r.Servings,
		})
	}

	return recipes, nil
}

// VerifySetup makes a one-result test search and reports the outcome, for
// the diagnostics endpoint.
func (s *SpoonacularService) VerifySetup(ctx context.Context) (bool, string) {
	if s.apiKey == "" {
		return false, "RapidAPI key is not configured"
	}
	recipes, err := s.SearchRecipeByName(ctx, "pasta", 1)
	if err != nil {
		return false, fmt.Sprintf("API verification failed: %v", err)
	}
	return true, fmt.Sprintf("API verification successful. Found %d recipes.", len(recipes))
}
