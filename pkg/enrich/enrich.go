// Package enrich asks an LLM for extended recipe details and normalizes
// the loosely-typed response into models.RecipeDetails.
package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/greenplate/sustainabite/pkg/logger"
	"github.com/greenplate/sustainabite/pkg/models"
)

// Client represents an OpenAI-backed enrichment client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new enrichment client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	client := openai.NewClientWithConfig(config)
	return &Client{
		client: client,
		model:  model,
		logger: logger.New("enrich"),
	}
}

// EnrichRecipe retrieves extended details for a recipe from the LLM.
// Fields the model leaves out come back filled with their defaults.
func (c *Client) EnrichRecipe(ctx context.Context, recipe models.Recipe) (*models.RecipeDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Recipe Name: %s

Please respond ONLY in minified JSON with these fields:
description (string),
difficulty (string),
cuisineType (string),
ingredients (array of strings),
prepSteps (array of strings),
nutrition (calories, protein, fat, carbs as numbers),
dietaryInfo (array of strings like "glutenFree", "vegan"),
tips (array of strings)
`, recipe.Title)

	c.logger.Info("Requesting details for recipe %d (%s)", recipe.ID, recipe.Title)
	c.logger.Debug("Prompt (first 100 chars): %s", truncateString(prompt, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a cooking expert who provides accurate information about dishes and recipes.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug("Response (first 100 chars): %s", truncateString(content, 100))

	details, err := ParseDetails(content)
	if err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse enrichment response: %w", err)
	}

	c.logger.Info("Successfully got details for recipe %d", recipe.ID)
	return details, nil
}

// Chat sends a free-text cooking-coach prompt to the LLM and returns
// the reply text, trimmed. An answer the model leaves empty comes back
// as ""; callers decide the fallback wording.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c.logger.Info("Generating chat reply")
	c.logger.Debug("Prompt (first 100 chars): %s", truncateString(prompt, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
