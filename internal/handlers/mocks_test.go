package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswaphq/skillswap/internal/models"
	"github.com/skillswaphq/skillswap/internal/services"
)

type mockUserService struct {
	CreateFunc        func(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	GetPublicByIDFunc func(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	AddSkillFunc      func(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error)
	RemoveSkillFunc   func(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error)
}

func (m *mockUserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserService) GetPublicByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetPublicByIDFunc != nil {
		return m.GetPublicByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *mockUserService) AddSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error) {
	if m.AddSkillFunc != nil {
		return m.AddSkillFunc(ctx, userID, kind, skill)
	}
	return nil, nil
}

func (m *mockUserService) RemoveSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error) {
	if m.RemoveSkillFunc != nil {
		return m.RemoveSkillFunc(ctx, userID, kind, skill)
	}
	return nil, nil
}

type mockAuthService struct {
	HashPasswordFunc          func(password string) (string, error)
	VerifyPasswordFunc        func(hash, password string) bool
	GenerateSessionTokenFunc  func() (string, string, error)
	CreateSessionFunc         func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateSessionFunc       func(ctx context.Context, token string) (*models.User, error)
	DeleteSessionFunc         func(ctx context.Context, token string) error
	DeleteAllUserSessionsFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	if m.HashPasswordFunc != nil {
		return m.HashPasswordFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockAuthService) VerifyPassword(hash, password string) bool {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(hash, password)
	}
	return hash == "hashed_"+password
}

func (m *mockAuthService) GenerateSessionToken() (string, string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc()
	}
	return "token", "hash", nil
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, userID)
	}
	return "test_session_token", nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockAuthService) DeleteSession(ctx context.Context, token string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, token)
	}
	return nil
}

func (m *mockAuthService) DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAllUserSessionsFunc != nil {
		return m.DeleteAllUserSessionsFunc(ctx, userID)
	}
	return nil
}

type mockDirectoryService struct {
	BrowseFunc func(ctx context.Context, query services.DirectoryQuery) (*services.DirectoryPage, error)
}

func (m *mockDirectoryService) Browse(ctx context.Context, query services.DirectoryQuery) (*services.DirectoryPage, error) {
	if m.BrowseFunc != nil {
		return m.BrowseFunc(ctx, query)
	}
	return &services.DirectoryPage{Profiles: []models.PublicProfile{}}, nil
}

type mockSwapService struct {
	CreateFunc  func(ctx context.Context, params services.CreateSwapParams) (*models.SwapRequest, error)
	AcceptFunc  func(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	RejectFunc  func(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
	ListForFunc func(ctx context.Context, userID uuid.UUID, role models.RequestRole, status models.RequestStatus) ([]models.SwapRequestWithNames, error)
}

func (m *mockSwapService) Create(ctx context.Context, params services.CreateSwapParams) (*models.SwapRequest, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockSwapService) Accept(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error) {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, requestID, actorID)
	}
	return nil, nil
}

func (m *mockSwapService) Reject(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, requestID, actorID)
	}
	return nil, nil
}

func (m *mockSwapService) GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSwapService) ListFor(ctx context.Context, userID uuid.UUID, role models.RequestRole, status models.RequestStatus) ([]models.SwapRequestWithNames, error) {
	if m.ListForFunc != nil {
		return m.ListForFunc(ctx, userID, role, status)
	}
	return nil, nil
}

type mockMatchService struct {
	RequestSwapFunc func(ctx context.Context, actor *uuid.UUID, params services.CreateSwapParams) (*services.SwapOutcome, error)
	AcceptSwapFunc  func(ctx context.Context, requestID, actorID uuid.UUID) (*services.SwapOutcome, error)
	RejectSwapFunc  func(ctx context.Context, requestID, actorID uuid.UUID) (*services.SwapOutcome, error)
}

func (m *mockMatchService) RequestSwap(ctx context.Context, actor *uuid.UUID, params services.CreateSwapParams) (*services.SwapOutcome, error) {
	if m.RequestSwapFunc != nil {
		return m.RequestSwapFunc(ctx, actor, params)
	}
	return nil, nil
}

func (m *mockMatchService) AcceptSwap(ctx context.Context, requestID, actorID uuid.UUID) (*services.SwapOutcome, error) {
	if m.AcceptSwapFunc != nil {
		return m.AcceptSwapFunc(ctx, requestID, actorID)
	}
	return nil, nil
}

func (m *mockMatchService) RejectSwap(ctx context.Context, requestID, actorID uuid.UUID) (*services.SwapOutcome, error) {
	if m.RejectSwapFunc != nil {
		return m.RejectSwapFunc(ctx, requestID, actorID)
	}
	return nil, nil
}
