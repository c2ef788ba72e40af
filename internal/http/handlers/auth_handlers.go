package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/auth"
	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
)

func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterHandler godoc
// @Summary Register a new admin tenant
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "name, email and password"
// @Success 201 {object} SessionResult
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateRegister(req); msg != "" {
		errorJSON(w, http.StatusBadRequest, msg)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	// Self-registration creates a tenant owner; staff accounts are created
	// by their admin through POST /staff.
	user, err := userRepo.Create(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
		Department:   models.DepartmentManagement,
		Status:       models.StatusActive,
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			errorJSON(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error().Err(err).Msg("failed to create user")
		errorJSON(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	setSessionCookie(w, token, r.TLS != nil)
	writeJSON(w, http.StatusCreated, SessionResult{Message: "Registration successful", User: user})
}

// LoginHandler godoc
// @Summary Authenticate and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} SessionResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !emailPattern.MatchString(req.Email) || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if user.Status == models.StatusInactive {
		errorJSON(w, http.StatusUnauthorized, "Account is inactive")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to login")
		return
	}
	_ = userRepo.TouchLastActive(r.Context(), user.ID)
	setSessionCookie(w, token, r.TLS != nil)
	writeJSON(w, http.StatusOK, SessionResult{Message: "Login successful", User: user})
}

// LogoutHandler godoc
// @Summary End the session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// MeHandler godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResult
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, MeResult{User: actor})
}
