// Package spoonacular implements the recipe search provider on top of
// the Spoonacular REST API.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/greenplate/sustainabite/pkg/logger"
	"github.com/greenplate/sustainabite/pkg/models"
)

const defaultBaseURL = "https://api.spoonacular.com"

// resultCount is how many candidate recipes one search requests.
const resultCount = 6

// Client is a Spoonacular API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a Spoonacular client with the given API key.
func New(apiKey string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.New("spoonacular"),
	}
}

// NewWithBaseURL creates a client pointed at a non-default endpoint.
// Used by tests.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ingredientMatch is one entry of a findByIngredients response.
type ingredientMatch struct {
	ID                int                 `json:"id"`
	Title             string              `json:"title"`
	Image             string              `json:"image"`
	UsedIngredients   []models.Ingredient `json:"usedIngredients"`
	MissedIngredients []models.Ingredient `json:"missedIngredients"`
}

// recipeInformation is the subset of /recipes/{id}/information we read.
type recipeInformation struct {
	ReadyInMinutes int `json:"readyInMinutes"`
	Servings       int `json:"servings"`
}

// complexResult is one entry of a complexSearch response.
type complexResult struct {
	ID                int                 `json:"id"`
	Title             string              `json:"title"`
	Image             string              `json:"image"`
	UsedIngredients   []models.Ingredient `json:"usedIngredients"`
	MissedIngredients []models.Ingredient `json:"missedIngredients"`
	Diets             []string            `json:"diets"`
	ReadyInMinutes    int                 `json:"readyInMinutes"`
	Servings          int                 `json:"servings"`
}

// Search returns candidate recipes for the given ingredients. Without
// diet filters it uses the ingredient-ranked endpoint and fetches
// timing info per recipe; with filters it uses complexSearch so the
// diet restriction is applied server-side. No retries are attempted.
func (c *Client) Search(ctx context.Context, ingredients, diets []string) ([]models.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("ingredients must be a non-empty list")
	}

	if len(diets) == 0 {
		return c.searchByIngredients(ctx, ingredients)
	}
	return c.complexSearch(ctx, ingredients, diets)
}

func (c *Client) searchByIngredients(ctx context.Context, ingredients []string) ([]models.Recipe, error) {
	params := url.Values{}
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", strconv.Itoa(resultCount))
	params.Set("ranking", "1")
	params.Set("ignorePantry", "true")
	params.Set("apiKey", c.apiKey)

	var matches []ingredientMatch
	if err := c.get(ctx, "/recipes/findByIngredients", params, &matches); err != nil {
		return nil, fmt.Errorf("findByIngredients request failed: %w", err)
	}

	c.logger.Info("Found %d candidate recipes for %d ingredients", len(matches), len(ingredients))

	recipes := make([]models.Recipe, 0, len(matches))
	for _, m := range matches {
		infoParams := url.Values{}
		infoParams.Set("apiKey", c.apiKey)

		var info recipeInformation
		if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", m.ID), infoParams, &info); err != nil {
			return nil, fmt.Errorf("information request for recipe %d failed: %w", m.ID, err)
		}

		recipes = append(recipes, models.Recipe{
			ID:                m.ID,
			Title:             m.Title,
			Image:             m.Image,
			UsedIngredients:   m.UsedIngredients,
			MissedIngredients: m.MissedIngredients,
			Diets:             []string{},
			ReadyInMinutes:    info.ReadyInMinutes,
			Servings:          info.Servings,
		})
	}

	return recipes, nil
}

func (c *Client) complexSearch(ctx context.Context, ingredients, diets []string) ([]models.Recipe, error) {
	params := url.Values{}
	params.Set("includeIngredients", strings.Join(ingredients, ","))
	params.Set("number", strconv.Itoa(resultCount))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("diet", strings.Join(diets, ","))
	params.Set("apiKey", c.apiKey)

	var payload struct {
		Results []complexResult `json:"results"`
	}
	if err := c.get(ctx, "/recipes/complexSearch", params, &payload); err != nil {
		return nil, fmt.Errorf("complexSearch request failed: %w", err)
	}

	c.logger.Info("Found %d candidate recipes for %d ingredients (%d diet filters)",
		len(payload.Results), len(ingredients), len(diets))

	recipes := make([]models.Recipe, 0, len(payload.Results))
	for _, r := range payload.Results {
		used := r.UsedIngredients
		if used == nil {
			used = []models.Ingredient{}
		}
		missed := r.MissedIngredients
		if missed == nil {
			missed = []models.Ingredient{}
		}
		dietsOut := r.Diets
		if dietsOut == nil {
			dietsOut = []string{}
		}

		recipes = append(recipes, models.Recipe{
			ID:                r.ID,
			Title:             r.Title,
			Image:             r.Image,
			UsedIngredients:   used,
			MissedIngredients: missed,
			Diets:             dietsOut,
			ReadyInMinutes:    r.ReadyInMinutes,
			Servings:          r.Servings,
		})
	}

	return recipes, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
