package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/greenplate/sustainabite/pkg/models"
	"github.com/greenplate/sustainabite/pkg/quiz"
)

// searchRequest is the body of POST /api/recipes.
type searchRequest struct {
	Ingredients []string `json:"ingredients"`
	Diets       []string `json:"diets"`
}

// enrichRequest is the body of POST /api/enrich.
type enrichRequest struct {
	Recipe models.Recipe `json:"recipe"`
}

// chatRequest is the body of POST /api/chat. Either a recipe or a
// free-text prompt may be supplied.
type chatRequest struct {
	Recipe *models.Recipe `json:"recipe"`
	Prompt string         `json:"prompt"`
}

// toggleRequest is the body of POST /api/favorites/toggle.
type toggleRequest struct {
	Recipe models.Recipe `json:"recipe"`
}

// defaultChatPrompt is used when the client supplies neither a recipe
// nor a prompt.
const defaultChatPrompt = "Suggest a sustainable recipe using available ingredients."

// emptyChatReply is returned when the model produces no usable text.
const emptyChatReply = "Sorry, no suggestion could be generated."

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleSearchRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Ingredients) == 0 {
		sendErrorResponse(w, http.StatusBadRequest, "Ingredients must be a non-empty array")
		return
	}

	recipes, err := s.search.Search(r.Context(), req.Ingredients, req.Diets)
	if err != nil {
		s.logger.Error("Recipe search failed: %v", err)
		sendErrorResponse(w, http.StatusBadGateway, "Failed to fetch recipes")
		return
	}

	sendJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleEnrichRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	details, err := s.enrich.EnrichRecipe(r.Context(), req.Recipe)
	if err != nil {
		s.logger.Error("Enrichment failed for recipe %d: %v", req.Recipe.ID, err)
		sendErrorResponse(w, http.StatusBadGateway, "Failed to fetch recipe details")
		return
	}

	sendJSON(w, http.StatusOK, details)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompt := defaultChatPrompt
	switch {
	case req.Recipe != nil && req.Recipe.Title != "":
		prompt = req.Recipe.Title
	case req.Prompt != "":
		prompt = req.Prompt
	}

	reply, err := s.enrich.Chat(r.Context(), prompt)
	if err != nil {
		s.logger.Error("Chat failed: %v", err)
		sendErrorResponse(w, http.StatusBadGateway, "Failed to generate suggestion")
		return
	}

	if reply == "" {
		reply = emptyChatReply
	}

	sendJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count := quiz.DefaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			sendErrorResponse(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	sendJSON(w, http.StatusOK, quiz.Random(count))
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sendJSON(w, http.StatusOK, s.favorites.Favorites())
}

func (s *Server) handleFavoritesCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sendJSON(w, http.StatusOK, map[string]int{"count": s.favorites.Count()})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.favorites.Toggle(req.Recipe); err != nil {
		s.logger.Error("Failed to toggle favorite %d: %v", req.Recipe.ID, err)
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"count":    s.favorites.Count(),
		"favorite": s.favorites.IsFavorite(req.Recipe.ID),
	})
}

// sendJSON writes a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// sendErrorResponse writes a JSON error body with the given status code.
func sendErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
