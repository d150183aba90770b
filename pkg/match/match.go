// Package match implements ingredient name matching and best-match
// recipe selection. Matching is a display heuristic: it decides which
// ingredients get a checkmark on a recipe card, it never filters which
// recipes are shown.
package match

import (
	"strings"

	"github.com/greenplate/sustainabite/pkg/models"
)

// Normalize canonicalizes an ingredient name for comparison. It
// lower-cases the input, drops whitespace and every non-letter rune,
// then strips a single trailing "es" or "s". The result is a lossy
// comparison key: "Tomato" and "Tomatoes" both normalize to "tomat".
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if strings.HasSuffix(out, "es") {
		return out[:len(out)-2]
	}
	if strings.HasSuffix(out, "s") {
		return out[:len(out)-1]
	}
	return out
}

// IsMatch reports whether any of the user's ingredients covers the
// candidate ingredient name. Containment is checked in both directions
// so that "onion" matches "red onions" and vice versa. Deliberately
// permissive; short tokens can false-positive ("egg" inside "eggplant").
func IsMatch(userIngredients []string, candidateName string) bool {
	norm := Normalize(candidateName)
	for _, input := range userIngredients {
		ni := Normalize(input)
		if strings.Contains(norm, ni) || strings.Contains(ni, norm) {
			return true
		}
	}
	return false
}

// BestMatch selects the single recipe to promote as the best match.
// Fewer missed ingredients is strictly better; on a tie, more used
// ingredients wins; any further tie keeps the earliest recipe in input
// order. Returns nil for an empty slice.
func BestMatch(recipes []models.Recipe) *models.Recipe {
	if len(recipes) == 0 {
		return nil
	}

	best := &recipes[0]
	for i := 1; i < len(recipes); i++ {
		curr := &recipes[i]
		cm := len(curr.MissedIngredients)
		pm := len(best.MissedIngredients)
		if cm < pm {
			best = curr
			continue
		}
		if cm == pm && len(curr.UsedIngredients) > len(best.UsedIngredients) {
			best = curr
		}
	}
	return best
}
