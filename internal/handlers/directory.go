package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap/internal/services"
)

type DirectoryHandler struct {
	directoryService services.DirectoryServiceInterface
	userService      services.UserServiceInterface
}

func NewDirectoryHandler(directoryService services.DirectoryServiceInterface, userService services.UserServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
		userService:      userService,
	}
}

// Browse handles GET /api/directory. All filters are optional query params.
func (h *DirectoryHandler) Browse(w http.ResponseWriter, r *http.Request) {
	query := services.DirectoryQuery{
		Text:         r.URL.Query().Get("q"),
		Availability: r.URL.Query().Get("availability"),
		Page:         intParam(r, "page", 1),
		PageSize:     intParam(r, "size", services.DefaultPageSize),
	}

	page, err := h.directoryService.Browse(r.Context(), query)
	if err != nil {
		log.Printf("Error browsing directory: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetUser handles GET /api/users/{id}. Only public profiles are served.
func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetPublicByID(r.Context(), id)
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error getting user: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
