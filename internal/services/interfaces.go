package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap/internal/models"
)

// UserServiceInterface defines the contract for user operations.
type UserServiceInterface interface {
	Create(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetPublicByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	AddSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error)
}

// AuthServiceInterface defines the contract for authentication operations.
type AuthServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) bool
	GenerateSessionToken() (token string, hash string, err error)
	CreateSession(ctx context.Context, userID uuid.UUID) (token string, err error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error
}

// DirectoryServiceInterface defines the contract for browsing the public
// roster.
type DirectoryServiceInterface interface {
	Browse(ctx context.Context, query DirectoryQuery) (*DirectoryPage, error)
}

// SwapServiceInterface defines the contract for swap request operations used
// by handlers.
type SwapServiceInterface interface {
	Create(ctx context.Context, params CreateSwapParams) (*models.SwapRequest, error)
	Accept(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	Reject(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
	ListFor(ctx context.Context, userID uuid.UUID, role models.RequestRole, status models.RequestStatus) ([]models.SwapRequestWithNames, error)
}

// MatchServiceInterface defines the contract for the swap orchestration flow.
type MatchServiceInterface interface {
	RequestSwap(ctx context.Context, actor *uuid.UUID, params CreateSwapParams) (*SwapOutcome, error)
	AcceptSwap(ctx context.Context, requestID, actorID uuid.UUID) (*SwapOutcome, error)
	RejectSwap(ctx context.Context, requestID, actorID uuid.UUID) (*SwapOutcome, error)
}
