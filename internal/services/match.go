package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap/internal/models"
)

// Notice is a user-facing confirmation produced by the matching flow.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SwapOutcome reports the result of a swap action. When the actor was not
// signed in, NeedsAuthentication is set and the client should redirect to
// the login page instead of showing an error.
type SwapOutcome struct {
	Request             *models.SwapRequest `json:"request,omitempty"`
	Notice              Notice              `json:"notice"`
	NeedsAuthentication bool                `json:"needs_authentication,omitempty"`
	RedirectToLogin     bool                `json:"redirect_to_login,omitempty"`
}

// swapRequester is the slice of SwapService the orchestrator uses.
type swapRequester interface {
	Create(ctx context.Context, params CreateSwapParams) (*models.SwapRequest, error)
	Accept(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	Reject(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
}

// userReader is the slice of UserService the orchestrator uses.
type userReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// MatchService coordinates the swap lifecycle between users and shapes the
// notices shown after each step.
type MatchService struct {
	swaps swapRequester
	users userReader
}

func NewMatchService(swaps swapRequester, users userReader) *MatchService {
	return &MatchService{swaps: swaps, users: users}
}

// RequestSwap opens a request on behalf of actor. An unauthenticated actor
// gets a login prompt rather than an error; every other guard surfaces as a
// sentinel error from the swap service.
func (s *MatchService) RequestSwap(ctx context.Context, actor *uuid.UUID, params CreateSwapParams) (*SwapOutcome, error) {
	params.FromUserID = actor
	request, err := s.swaps.Create(ctx, params)
	if errors.Is(err, ErrAuthenticationRequired) {
		return &SwapOutcome{
			NeedsAuthentication: true,
			RedirectToLogin:     true,
			Notice: Notice{
				Title:       "Login Required",
				Description: "Please log in to request skill swaps.",
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, request.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("loading swap target: %w", err)
	}

	return &SwapOutcome{
		Request: request,
		Notice: Notice{
			Title:       "Request Sent!",
			Description: fmt.Sprintf("Your skill swap request has been sent to %s.", target.Name),
		},
	}, nil
}

// AcceptSwap resolves a pending request in the sender's favor and names them
// in the confirmation.
func (s *MatchService) AcceptSwap(ctx context.Context, requestID, actorID uuid.UUID) (*SwapOutcome, error) {
	request, err := s.swaps.Accept(ctx, requestID, actorID)
	if err != nil {
		return nil, err
	}

	sender, err := s.users.GetByID(ctx, request.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("loading swap sender: %w", err)
	}

	return &SwapOutcome{
		Request: request,
		Notice: Notice{
			Title:       "Request Accepted!",
			Description: fmt.Sprintf("You've accepted %s's skill swap request.", sender.Name),
		},
	}, nil
}

// RejectSwap declines a pending request.
func (s *MatchService) RejectSwap(ctx context.Context, requestID, actorID uuid.UUID) (*SwapOutcome, error) {
	request, err := s.swaps.Reject(ctx, requestID, actorID)
	if err != nil {
		return nil, err
	}

	sender, err := s.users.GetByID(ctx, request.FromUserID)
	if err != nil {
		return nil, fmt.Errorf("loading swap sender: %w", err)
	}

	return &SwapOutcome{
		Request: request,
		Notice: Notice{
			Title:       "Request Rejected",
			Description: fmt.Sprintf("You've rejected %s's skill swap request.", sender.Name),
		},
	}, nil
}

// ProfileUpdatedNotice is the confirmation shown after a profile save.
func ProfileUpdatedNotice() Notice {
	return Notice{
		Title:       "Profile Updated",
		Description: "Your profile has been successfully updated.",
	}
}
