package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillswaphq/skillswap/internal/models"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrSelfRequest            = errors.New("cannot request a swap with yourself")
	ErrSkillNotOffered        = errors.New("skill is not in the sender's offered list")
	ErrRequestNotFound        = errors.New("swap request not found")
	ErrNotRequestRecipient    = errors.New("only the request recipient may respond")
	ErrRequestNotPending      = errors.New("swap request is no longer pending")
)

const swapColumns = `id, from_user_id, to_user_id, skill_offered, skill_wanted,
	message, status, created_at`

type SwapService struct {
	db DB
}

func NewSwapService(db DB) *SwapService {
	return &SwapService{db: db}
}

// CreateSwapParams carries everything needed to open a request. FromUserID
// is nil when the caller is unauthenticated.
type CreateSwapParams struct {
	FromUserID   *uuid.UUID
	ToUserID     uuid.UUID
	SkillOffered string
	SkillWanted  string
	Message      *string
}

// Create opens a pending request after checking the guards: the sender must
// be authenticated, distinct from the target, and must actually offer the
// skill they are proposing to teach. Duplicate pending requests to the same
// target are allowed; recipients resolve them independently.
func (s *SwapService) Create(ctx context.Context, params CreateSwapParams) (*models.SwapRequest, error) {
	if params.FromUserID == nil {
		return nil, ErrAuthenticationRequired
	}
	fromID := *params.FromUserID
	if fromID == params.ToUserID {
		return nil, ErrSelfRequest
	}

	skillOffered := strings.TrimSpace(params.SkillOffered)
	skillWanted := strings.TrimSpace(params.SkillWanted)

	var offered models.SkillSet
	err := s.db.QueryRow(ctx, "SELECT skills_offered FROM users WHERE id = $1", fromID).Scan(&offered)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading sender skills: %w", err)
	}
	if !offered.Contains(skillOffered) {
		return nil, ErrSkillNotOffered
	}

	return s.scanRequest(s.db.QueryRow(ctx,
		`INSERT INTO swap_requests (from_user_id, to_user_id, skill_offered, skill_wanted, message, status)
		 VALUES ($1, $2, $3, $4, $5, 'pending')
		 RETURNING `+swapColumns,
		fromID, params.ToUserID, skillOffered, skillWanted, params.Message,
	))
}

// Accept transitions a pending request to accepted. Only the recipient may
// accept, and a resolved request stays resolved.
func (s *SwapService) Accept(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error) {
	return s.respond(ctx, requestID, actorID, models.RequestStatusAccepted)
}

// Reject transitions a pending request to rejected under the same guards as
// Accept.
func (s *SwapService) Reject(ctx context.Context, requestID, actorID uuid.UUID) (*models.SwapRequest, error) {
	return s.respond(ctx, requestID, actorID, models.RequestStatusRejected)
}

func (s *SwapService) respond(ctx context.Context, requestID, actorID uuid.UUID, status models.RequestStatus) (*models.SwapRequest, error) {
	request, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ToUserID != actorID {
		return nil, ErrNotRequestRecipient
	}
	if request.Status != models.RequestStatusPending {
		return nil, ErrRequestNotPending
	}

	return s.scanRequest(s.db.QueryRow(ctx,
		`UPDATE swap_requests SET status = $1 WHERE id = $2 RETURNING `+swapColumns,
		status, requestID,
	))
}

func (s *SwapService) GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error) {
	return s.scanRequest(s.db.QueryRow(ctx,
		`SELECT `+swapColumns+` FROM swap_requests WHERE id = $1`, id))
}

// ListFor returns the user's requests newest first, filtered by which side
// of the exchange they are on and optionally by status. A zero status means
// all statuses.
func (s *SwapService) ListFor(ctx context.Context, userID uuid.UUID, role models.RequestRole, status models.RequestStatus) ([]models.SwapRequestWithNames, error) {
	query := `SELECT r.id, r.from_user_id, r.to_user_id, r.skill_offered, r.skill_wanted,
	                 r.message, r.status, r.created_at,
	                 fu.name, tu.name
	          FROM swap_requests r
	          JOIN users fu ON fu.id = r.from_user_id
	          JOIN users tu ON tu.id = r.to_user_id`
	args := []any{userID}

	switch role {
	case models.RoleIncoming:
		query += " WHERE r.to_user_id = $1"
	case models.RoleOutgoing:
		query += " WHERE r.from_user_id = $1"
	default:
		query += " WHERE (r.to_user_id = $1 OR r.from_user_id = $1)"
	}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying swap requests: %w", err)
	}
	defer rows.Close()

	var requests []models.SwapRequestWithNames
	for rows.Next() {
		var r models.SwapRequestWithNames
		err := rows.Scan(
			&r.ID,
			&r.FromUserID,
			&r.ToUserID,
			&r.SkillOffered,
			&r.SkillWanted,
			&r.Message,
			&r.Status,
			&r.CreatedAt,
			&r.FromUserName,
			&r.ToUserName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning swap request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating swap requests: %w", err)
	}
	return requests, nil
}

func (s *SwapService) scanRequest(row Row) (*models.SwapRequest, error) {
	request := &models.SwapRequest{}
	err := row.Scan(
		&request.ID,
		&request.FromUserID,
		&request.ToUserID,
		&request.SkillOffered,
		&request.SkillWanted,
		&request.Message,
		&request.Status,
		&request.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning swap request: %w", err)
	}
	return request, nil
}
