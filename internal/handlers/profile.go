package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/skillswaphq/skillswap/internal/models"
	"github.com/skillswaphq/skillswap/internal/services"
)

type ProfileHandler struct {
	userService services.UserServiceInterface
}

func NewProfileHandler(userService services.UserServiceInterface) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Availability *string `json:"availability"`
	IsPublic     *bool   `json:"is_public"`
}

type SkillRequest struct {
	Kind  string `json:"kind"`
	Skill string `json:"skill"`
}

type ProfileResponse struct {
	User   *models.User    `json:"user"`
	Notice services.Notice `json:"notice"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, models.UpdateProfileParams{
		Name:         req.Name,
		Location:     req.Location,
		Availability: req.Availability,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		User:   updated,
		Notice: services.ProfileUpdatedNotice(),
	})
}

func (h *ProfileHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	req, ok := decodeSkillRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.userService.AddSkill(r.Context(), user.ID, models.SkillKind(req.Kind), req.Skill)
	if errors.Is(err, models.ErrEmptySkill) {
		writeError(w, http.StatusBadRequest, "Skill name cannot be empty")
		return
	}
	if errors.Is(err, services.ErrUnknownSkillKind) {
		writeError(w, http.StatusBadRequest, "Skill kind must be offered or wanted")
		return
	}
	if err != nil {
		log.Printf("Error adding skill: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		User:   updated,
		Notice: services.ProfileUpdatedNotice(),
	})
}

func (h *ProfileHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	req, ok := decodeSkillRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.userService.RemoveSkill(r.Context(), user.ID, models.SkillKind(req.Kind), req.Skill)
	if errors.Is(err, services.ErrUnknownSkillKind) {
		writeError(w, http.StatusBadRequest, "Skill kind must be offered or wanted")
		return
	}
	if err != nil {
		log.Printf("Error removing skill: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		User:   updated,
		Notice: services.ProfileUpdatedNotice(),
	})
}

func decodeSkillRequest(w http.ResponseWriter, r *http.Request) (SkillRequest, bool) {
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if req.Kind == "" {
		req.Kind = string(models.SkillKindOffered)
	}
	return req, true
}
