package models

// MealSuggestion is a transient LLM-generated candidate meal. It exists only
// for the duration of a suggestion session and is never persisted.
type MealSuggestion struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients"`
	Instructions    []string `json:"instructions,omitempty"`
	PreparationTime string   `json:"preparationTime,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`

	// Reconciliation annotations, filled in best-effort.
	MatchedRecipe *Recipe `json:"matchedRecipe,omitempty"`
	MatchPending  bool    `json:"matchPending,omitempty"`
}

// Recipe is a record from the external recipe-search API, used to enrich
// suggestions and meal-plan entries with image/time/servings.
type Recipe struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes,omitempty"`
	Servings       int    `json:"servings,omitempty"`
}
