package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

const defaultMealCount = 5

// jsonArrayPattern extracts the first array-of-objects block from prose.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// SuggestionGenerator is the seam the planner and handlers depend on.
type SuggestionGenerator interface {
	GenerateSuggestions(ctx context.Context, fridgeItems []string, mealCount int, mealTypes []string) ([]models.MealSuggestion, error)
}

// SuggestionService turns on-hand ingredients into AI meal suggestions.
type SuggestionService struct {
	llm ChatCompleter
}

func NewSuggestionService(llm ChatCompleter) *SuggestionService {
	return &SuggestionService{llm: llm}
}

// GenerateSuggestions prompts the model for exactly mealCount suggestions
// and parses its output. Malformed model output degrades to a placeholder
// suggestion rather than an error; only configuration and transport
// failures propagate.
func (s *SuggestionService) GenerateSuggestions(ctx context.Context, fridgeItems []string, mealCount int, mealTypes []string) ([]models.MealSuggestion, error) {
	if len(fridgeItems) == 0 {
		return nil, apperrors.NewValidation("fridgeItems must be a non-empty array of strings")
	}
	if mealCount <= 0 {
		mealCount = defaultMealCount
	}

	content, err := s.llm.CreateChatCompletion(ctx, []ChatMessage{
		{Role: "system", Content: buildSystemPrompt(mealCount)},
		{Role: "user", Content: buildUserPrompt(fridgeItems, mealCount, mealTypes)},
	})
	if err != nil {
		return nil, err
	}

	return ParseSuggestions(content, fridgeItems), nil
}

func buildSystemPrompt(mealCount int) string {
	return fmt.Sprintf(`You are a helpful culinary assistant that generates recipe ideas based on available ingredients.
Always respond with valid JSON that follows this exact structure:
[
  {
    "name": "Recipe Name",
    "description": "Brief description of the recipe",
    "ingredients": ["ingredient1", "ingredient2", "..."],
    "instructions": ["step1", "step2", "..."],
    "preparationTime": "30 mins"
  },
  ...more recipes
]
Your response must be a valid JSON array with %d recipe objects.`, mealCount)
}

func buildUserPrompt(fridgeItems []string, mealCount int, mealTypes []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I have these ingredients: %s.", strings.Join(fridgeItems, ", "))

	if len(mealTypes) > 0 {
		fmt.Fprintf(&b, "\nPlease suggest %d meal ideas specifically for these meal types: %s.", mealCount, strings.Join(mealTypes, ", "))
		for _, mt := range mealTypes {
			switch strings.ToLower(mt) {
			case "breakfast":
				b.WriteString("\nFor breakfast, suggest appropriate morning meals.")
			case "lunch":
				b.WriteString("\nFor lunch, suggest lighter meals suitable for midday.")
			case "dinner":
				b.WriteString("\nFor dinner, suggest more substantial evening meals.")
			}
		}
	} else {
		fmt.Fprintf(&b, "\nPlease suggest %d meal ideas I could make with some of these ingredients.", mealCount)
	}

	b.WriteString("\nReturn ONLY a JSON array containing the recipe objects.")
	return b.String()
}

// ParseSuggestions decodes model output into suggestions. The ladder:
// direct JSON parse, then the first [ { ... } ] block, then the span from
// the first '[' to the last ']'. If everything fails it synthesizes a
// single placeholder from the first fridge item, so the caller never
// receives zero suggestions while ingredients exist. Every suggestion gets
// a freshly generated id.
func ParseSuggestions(content string, fridgeItems []string) []models.MealSuggestion {
	content = strings.TrimSpace(content)

	suggestions, ok := decodeSuggestionArray(content)
	if !ok {
		if match := jsonArrayPattern.FindString(content); match != "" {
			suggestions, ok = decodeSuggestionArray(match)
		}
	}
	if !ok {
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start != -1 && end != -1 && start < end {
			suggestions, ok = decodeSuggestionArray(content[start : end+1])
		}
	}
	if !ok || len(suggestions) == 0 {
		suggestions = []models.MealSuggestion{fallbackSuggestion(fridgeItems)}
	}

	for i := range suggestions {
		suggestions[i].ID = uuid.NewString()
	}
	return suggestions
}

func decodeSuggestionArray(s string) ([]models.MealSuggestion, bool) {
	var suggestions []models.MealSuggestion
	if err := json.Unmarshal([]byte(s), &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}

func fallbackSuggestion(fridgeItems []string) models.MealSuggestion {
	item := "Pantry"
	if len(fridgeItems) > 0 && fridgeItems[0] != "" {
		item = fridgeItems[0]
	}
	title := strings.ToUpper(item[:1]) + item[1:]

	return models.MealSuggestion{
		Name:            "Simple " + title + " Dish",
		Description:     fmt.Sprintf("A simple dish using %s with other basic ingredients.", item),
		Ingredients:     append([]string{}, fridgeItems...),
		Instructions:    []string{"Combine ingredients", "Cook until done", "Serve hot"},
		PreparationTime: "20 mins",
	}
}
