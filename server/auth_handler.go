package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"Moosic/core/auth"
	"Moosic/logger"
	"Moosic/model"
	"Moosic/repository"
)

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the success shape of signup and login.
type authResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

// SignupHandler handles user registration.
func (h *APIHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	if len(req.Password) < 6 {
		writeMessage(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Signup] failed to hash password", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	userID, err := h.userRepo.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			logger.Warn("[Signup] duplicate email", logger.String("email", req.Email))
			writeMessage(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		logger.Error("[Signup] failed to create user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	token, err := h.tokens.GenerateToken(userID, user.Email)
	if err != nil {
		logger.Error("[Signup] failed to generate token", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	logger.Info("[Signup] user created", logger.Int64("userId", userID))
	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User created successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// LoginHandler handles user login.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.userRepo.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Error("[Login] failed to query user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error during login")
		return
	}
	if user == nil {
		logger.Warn("[Login] unknown email", logger.String("email", req.Email))
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("[Login] wrong password", logger.String("email", req.Email))
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("[Login] failed to generate token", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	logger.Info("[Login] login successful", logger.Int64("userId", user.ID))
	writeJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// MeHandler returns the authenticated user.
func (h *APIHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	user, err := h.userRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		logger.Error("[Me] failed to query user", logger.ErrorField(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.PublicUser{"user": user.Public()})
}

// LogoutHandler exists so the client has a logout endpoint; the token is
// cleared client-side.
func (h *APIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
