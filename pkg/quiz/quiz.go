// Package quiz holds the food-waste trivia catalog and random sampling.
package quiz

import (
	"math/rand"
	"time"

	"github.com/greenplate/sustainabite/pkg/models"
)

// DefaultCount is the number of questions served when the caller
// doesn't ask for a specific amount.
const DefaultCount = 3

// Random returns count questions drawn uniformly from the catalog,
// without repeats. Asking for more questions than the catalog holds
// returns the full shuffled catalog. The catalog itself is never
// mutated.
func Random(count int) []models.QuizQuestion {
	shuffled := make([]models.QuizQuestion, len(questions))
	copy(shuffled, questions)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}

// Size returns the number of questions in the catalog.
func Size() int {
	return len(questions)
}
