package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap/internal/models"
	"github.com/skillswaphq/skillswap/internal/services"
)

type SwapHandler struct {
	matchService services.MatchServiceInterface
	swapService  services.SwapServiceInterface
}

func NewSwapHandler(matchService services.MatchServiceInterface, swapService services.SwapServiceInterface) *SwapHandler {
	return &SwapHandler{
		matchService: matchService,
		swapService:  swapService,
	}
}

type CreateSwapRequest struct {
	ToUserID     uuid.UUID `json:"to_user_id"`
	SkillOffered string    `json:"skill_offered"`
	SkillWanted  string    `json:"skill_wanted"`
	Message      *string   `json:"message"`
}

// Create handles POST /api/swaps. The route is reachable without a session;
// an anonymous caller gets a login prompt outcome rather than a 401 so the
// client can redirect.
func (h *SwapHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var actor *uuid.UUID
	if user := GetUserFromContext(r.Context()); user != nil {
		actor = &user.ID
	}

	outcome, err := h.matchService.RequestSwap(r.Context(), actor, services.CreateSwapParams{
		ToUserID:     req.ToUserID,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Message:      req.Message,
	})
	if err != nil {
		h.writeSwapError(w, err)
		return
	}

	status := http.StatusCreated
	if outcome.NeedsAuthentication {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, outcome)
}

// List handles GET /api/swaps with optional role and status filters.
func (h *SwapHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	role := models.RequestRole(r.URL.Query().Get("role"))
	switch role {
	case models.RoleOutgoing, models.RoleAll:
	default:
		role = models.RoleIncoming
	}

	status := models.RequestStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	requests, err := h.swapService.ListFor(r.Context(), user.ID, role, status)
	if err != nil {
		log.Printf("Error listing swap requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if requests == nil {
		requests = []models.SwapRequestWithNames{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

// Accept handles PUT /api/swaps/{id}/accept.
func (h *SwapHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.matchService.AcceptSwap)
}

// Reject handles PUT /api/swaps/{id}/reject.
func (h *SwapHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.matchService.RejectSwap)
}

func (h *SwapHandler) respond(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, requestID, actorID uuid.UUID) (*services.SwapOutcome, error)) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	outcome, err := action(r.Context(), requestID, user.ID)
	if err != nil {
		h.writeSwapError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (h *SwapHandler) writeSwapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSelfRequest):
		writeError(w, http.StatusBadRequest, "Cannot request a swap with yourself")
	case errors.Is(err, services.ErrSkillNotOffered):
		writeError(w, http.StatusBadRequest, "You can only offer skills from your profile")
	case errors.Is(err, services.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Swap request not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNotRequestRecipient):
		writeError(w, http.StatusForbidden, "Only the request recipient may respond")
	case errors.Is(err, services.ErrRequestNotPending):
		writeError(w, http.StatusConflict, "Swap request has already been resolved")
	default:
		log.Printf("Error handling swap request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
