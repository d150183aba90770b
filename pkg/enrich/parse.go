package enrich

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/greenplate/sustainabite/pkg/models"
)

// rawDetails mirrors the JSON the model is asked to produce. Everything
// is loosely typed so a partial or slightly off-shape response still
// decodes.
type rawDetails struct {
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty"`
	CuisineType string            `json:"cuisineType"`
	Ingredients []json.RawMessage `json:"ingredients"`
	PrepSteps   []string          `json:"prepSteps"`
	Nutrition   *rawNutrition     `json:"nutrition"`
	DietaryInfo json.RawMessage   `json:"dietaryInfo"`
	Tips        []string          `json:"tips"`
}

type rawNutrition struct {
	Calories json.RawMessage `json:"calories"`
	Protein  json.RawMessage `json:"protein"`
	Fat      json.RawMessage `json:"fat"`
	Carbs    json.RawMessage `json:"carbs"`
}

// ingredientObject is the {amount, item} shape some responses use
// instead of a plain string.
type ingredientObject struct {
	Amount string `json:"amount"`
	Item   string `json:"item"`
}

// ParseDetails cleans and decodes a model response into RecipeDetails.
// Every optional field gets an explicit default: empty description,
// "N/A" difficulty and cuisine, empty slices, zero nutrition.
func ParseDetails(content string) (*models.RecipeDetails, error) {
	content = cleanJSONResponse(content)

	var raw rawDetails
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	details := &models.RecipeDetails{
		Description: raw.Description,
		Difficulty:  stringOr(raw.Difficulty, "N/A"),
		CuisineType: stringOr(raw.CuisineType, "N/A"),
		Ingredients: flattenIngredients(raw.Ingredients),
		PrepSteps:   sliceOrEmpty(raw.PrepSteps),
		DietaryInfo: decodeDietaryInfo(raw.DietaryInfo),
		Tips:        sliceOrEmpty(raw.Tips),
	}

	if raw.Nutrition != nil {
		details.Nutrition = models.Nutrition{
			Calories: toInt(raw.Nutrition.Calories),
			Protein:  toInt(raw.Nutrition.Protein),
			Fat:      toInt(raw.Nutrition.Fat),
			Carbs:    toInt(raw.Nutrition.Carbs),
		}
	}

	return details, nil
}

// cleanJSONResponse strips markdown code fences the model sometimes
// wraps around its JSON. The opening fence may sit on its own line or
// run directly into the payload ("```json{...}```").
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	firstLineEnd := strings.Index(s, "\n")
	if firstLineEnd != -1 && !strings.ContainsAny(s[:firstLineEnd], "{[") {
		// Fence on its own line, possibly with a language tag; skip it.
		s = s[firstLineEnd+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// flattenIngredients accepts each entry either as a plain string or as
// an {amount, item} object, producing "amount item" for the latter.
func flattenIngredients(entries []json.RawMessage) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			out = append(out, s)
			continue
		}

		var obj ingredientObject
		if err := json.Unmarshal(entry, &obj); err == nil {
			flattened := strings.TrimSpace(obj.Amount + " " + obj.Item)
			if flattened != "" {
				out = append(out, flattened)
			}
		}
	}
	return out
}

// decodeDietaryInfo accepts either a string array or an object of
// boolean flags, keeping the keys whose value is true.
func decodeDietaryInfo(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return sliceOrEmpty(list)
	}

	var flags map[string]bool
	if err := json.Unmarshal(raw, &flags); err == nil {
		out := make([]string, 0, len(flags))
		for key, enabled := range flags {
			if enabled {
				out = append(out, key)
			}
		}
		sort.Strings(out)
		return out
	}

	return []string{}
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// toInt decodes a nutrition value that may arrive as a number or as a
// string like "350" or "350 kcal". Anything unparseable becomes 0.
func toInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}

	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
