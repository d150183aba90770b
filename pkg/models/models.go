package models

// Ingredient is a single ingredient as reported by the search provider.
// Name is free text from the provider and is never normalized at rest;
// normalization happens at comparison time only.
type Ingredient struct {
	Name        string `json:"name"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// Recipe represents a candidate dish returned by the search provider.
// ID is unique within a single result set but not stable across searches.
type Recipe struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	Image             string       `json:"image"`
	UsedIngredients   []Ingredient `json:"usedIngredients"`
	MissedIngredients []Ingredient `json:"missedIngredients"`
	Diets             []string     `json:"diets,omitempty"`
	ReadyInMinutes    int          `json:"readyInMinutes"`
	Servings          int          `json:"servings"`
}

// Nutrition holds per-serving macro estimates from the AI provider.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

// RecipeDetails is the enriched detail payload for a recipe. Every field
// is optional on the wire; absent fields are filled with explicit defaults
// so consumers never have to deal with missing data.
type RecipeDetails struct {
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	CuisineType string    `json:"cuisineType"`
	Ingredients []string  `json:"ingredients"`
	PrepSteps   []string  `json:"prepSteps"`
	Nutrition   Nutrition `json:"nutrition"`
	DietaryInfo []string  `json:"dietaryInfo"`
	Tips        []string  `json:"tips"`
}

// QuizQuestion is a single trivia question. Answer is an index into
// Choices. Questions live in a fixed catalog and are only ever sampled,
// never created or modified at runtime.
type QuizQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
}
