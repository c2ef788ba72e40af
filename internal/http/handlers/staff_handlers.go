package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/auth"
	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
)

// GetStaffHandler godoc
// @Summary List the admin's staff members
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param department query string false "Filter by department"
// @Success 200 {object} StaffResult
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /staff [get]
func GetStaffHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	q := r.URL.Query()
	filter := repo.StaffFilter{}
	if role := q.Get("role"); role != "" && role != "all" {
		filter.Role = role
	}
	if department := q.Get("department"); department != "" && department != "all" {
		filter.Department = department
	}

	staff, err := userRepo.ListStaff(r.Context(), actor.ID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch staff members")
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch staff members")
		return
	}
	if staff == nil {
		staff = []models.User{}
	}
	writeJSON(w, http.StatusOK, StaffResult{Staff: staff})
}

// CreateStaffHandler godoc
// @Summary Create a staff member under the admin's tenant
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff body StaffRequest true "Staff member to create"
// @Success 201 {object} StaffCreatedResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /staff [post]
func CreateStaffHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req StaffRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateStaff(req); msg != "" {
		errorJSON(w, http.StatusBadRequest, msg)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	staff, err := userRepo.Create(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         req.Role,
		Department:   req.Department,
		Status:       models.StatusActive,
		AdminID:      actor.ID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			errorJSON(w, http.StatusBadRequest, "Email already in use")
			return
		}
		log.Error().Err(err).Msg("failed to create staff member")
		errorJSON(w, http.StatusInternalServerError, "Failed to create staff member")
		return
	}
	writeJSON(w, http.StatusCreated, StaffCreatedResult{Staff: staff})
}
