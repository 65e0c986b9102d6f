package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"Moosic/core/mood"
	"Moosic/logger"
	"Moosic/model"
)

// AnalyzeMoodRequest represents the analyze-mood request body. Content is
// decoded as a raw message so a non-string value is rejected instead of
// being silently coerced.
type AnalyzeMoodRequest struct {
	InputType string          `json:"inputType"`
	Content   json.RawMessage `json:"content"`
}

// RecommendationsRequest represents the mood-recommendations request body.
type RecommendationsRequest struct {
	Analysis string `json:"analysis"`
}

// AnalyzeMoodHandler validates the mood signal, calls the generative
// service, and persists a history entry for authenticated callers.
// Validation failures return before any external call.
func (h *APIHandler) AnalyzeMoodHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorField(w, http.StatusBadRequest, "Please provide valid content to analyze")
		return
	}

	var content string
	if len(req.Content) == 0 || json.Unmarshal(req.Content, &content) != nil {
		writeErrorField(w, http.StatusBadRequest, "Please provide valid content to analyze")
		return
	}
	if strings.TrimSpace(content) == "" {
		writeErrorField(w, http.StatusBadRequest, "Please provide valid content to analyze")
		return
	}

	signal := model.MoodSignal{Kind: req.InputType, Value: content}
	prompt, err := mood.Interpret(signal)
	if err != nil {
		if errors.Is(err, mood.ErrInvalidInputType) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":      "Invalid input type",
				"validTypes": []string{model.InputTypeEmoji, model.InputTypeText},
			})
			return
		}
		writeErrorField(w, http.StatusBadRequest, "Please provide valid content to analyze")
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), prompt)
	if err != nil {
		logger.Error("[AnalyzeMood] generative service failed", logger.ErrorField(err))
		writeErrorField(w, http.StatusInternalServerError, "Error analyzing mood")
		return
	}

	// Persist a history entry when the caller is authenticated. Best
	// effort: a storage error never fails the analysis response.
	if claims, ok := h.bearerClaims(r); ok && h.moodRepo != nil {
		detection := mood.Detect(req.InputType, content)
		entry := &model.MoodEntry{
			UserID:       claims.UserID,
			InputType:    req.InputType,
			Content:      content,
			DetectedMood: detection.Mood,
			MoodScore:    detection.Score,
			Analysis:     analysis,
		}
		if err := h.moodRepo.Create(r.Context(), entry); err != nil {
			logger.Warn("[AnalyzeMood] failed to save mood entry",
				logger.Int64("userId", claims.UserID), logger.ErrorField(err))
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// MoodRecommendationsHandler returns the recommendation bundle for an
// analysis text. Individual categories degrade to empty arrays rather
// than erroring.
func (h *APIHandler) MoodRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorField(w, http.StatusBadRequest, "Please provide a mood analysis")
		return
	}
	if strings.TrimSpace(req.Analysis) == "" {
		writeErrorField(w, http.StatusBadRequest, "Please provide a mood analysis")
		return
	}

	category := mood.Categorize(req.Analysis)

	if cached, ok := h.recCache.Get(r.Context(), string(category)); ok {
		logger.Debug("[Recommendations] cache hit", logger.String("category", string(category)))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"mood":            string(category),
			"recommendations": cached,
		})
		return
	}

	bundle := h.recommender.Recommend(r.Context(), req.Analysis)
	h.recCache.Set(r.Context(), string(category), bundle)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mood":            string(category),
		"recommendations": bundle,
	})
}

// MoodHistoryHandler returns the caller's recent mood entries.
func (h *APIHandler) MoodHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	entries, err := h.moodRepo.ListByUser(r.Context(), userID, 20)
	if err != nil {
		logger.Error("[MoodHistory] query failed", logger.ErrorField(err))
		writeErrorField(w, http.StatusInternalServerError, "Error fetching mood history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"moodHistory": entries})
}

// MoodStatsHandler returns per-mood aggregates for the caller.
func (h *APIHandler) MoodStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	stats, err := h.moodRepo.StatsByUser(r.Context(), userID)
	if err != nil {
		logger.Error("[MoodStats] query failed", logger.ErrorField(err))
		writeErrorField(w, http.StatusInternalServerError, "Error fetching mood statistics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}
