package server

import (
	"context"
	"encoding/json"
	"net/http"

	"Moosic/cache"
	"Moosic/config"
	"Moosic/core/auth"
	"Moosic/model"
	"Moosic/repository"
)

// MoodAnalyzer is the generative-service dependency of the API handler.
type MoodAnalyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Recommender is the aggregation dependency of the API handler.
type Recommender interface {
	Recommend(ctx context.Context, analysisText string) model.RecommendationBundle
}

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo    repository.UserRepository
	moodRepo    repository.MoodEntryRepository
	tokens      *auth.TokenManager
	analyzer    MoodAnalyzer
	recommender Recommender
	recCache    *cache.RecommendationCache
	cfg         *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	userRepo repository.UserRepository,
	moodRepo repository.MoodEntryRepository,
	tokens *auth.TokenManager,
	analyzer MoodAnalyzer,
	recommender Recommender,
	recCache *cache.RecommendationCache,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		userRepo:    userRepo,
		moodRepo:    moodRepo,
		tokens:      tokens,
		analyzer:    analyzer,
		recommender: recommender,
		recCache:    recCache,
		cfg:         cfg,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeMessage writes the {"message": ...} error shape used by the auth
// endpoints.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeErrorField writes the {"error": ...} error shape used by the mood
// endpoints.
func writeErrorField(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
