// Package server exposes the backend over HTTP: recipe search, AI
// enrichment, favorites and the trivia quiz.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/greenplate/sustainabite/pkg/favorites"
	"github.com/greenplate/sustainabite/pkg/logger"
	"github.com/greenplate/sustainabite/pkg/models"
)

// SearchProvider returns candidate recipes for a set of ingredients and
// optional diet filters.
type SearchProvider interface {
	Search(ctx context.Context, ingredients, diets []string) ([]models.Recipe, error)
}

// EnrichProvider returns extended AI-generated details for a recipe and
// answers free-text cooking-coach prompts.
type EnrichProvider interface {
	EnrichRecipe(ctx context.Context, recipe models.Recipe) (*models.RecipeDetails, error)
	Chat(ctx context.Context, prompt string) (string, error)
}

// Server holds the HTTP handler dependencies.
type Server struct {
	search    SearchProvider
	enrich    EnrichProvider
	favorites *favorites.Service
	logger    *logger.Logger
}

// New creates a server over the given providers and favorites service.
func New(search SearchProvider, enrich EnrichProvider, favs *favorites.Service) *Server {
	return &Server{
		search:    search,
		enrich:    enrich,
		favorites: favs,
		logger:    logger.New("server"),
	}
}

// Router builds the HTTP router with all API routes.
func (s *Server) Router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", s.handleHealth)
	router.POST("/api/recipes", s.handleSearchRecipes)
	router.POST("/api/enrich", s.handleEnrichRecipe)
	router.POST("/api/chat", s.handleChat)
	router.GET("/api/quiz", s.handleQuiz)
	router.GET("/api/favorites", s.handleListFavorites)
	router.GET("/api/favorites/count", s.handleFavoritesCount)
	router.POST("/api/favorites/toggle", s.handleToggleFavorite)

	return router
}

// Handler wraps the router with CORS and request logging.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.loggingMiddleware(c.Handler(s.Router()))
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		s.logger.Info("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}
