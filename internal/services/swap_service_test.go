package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillswaphq/skillswap/internal/models"
)

func swapRowValues(id, fromID, toID uuid.UUID, status models.RequestStatus) []any {
	return []any{id, fromID, toID, "React", "Python", nil, status, time.Now()}
}

func TestSwapService_Create_Unauthenticated(t *testing.T) {
	svc := &SwapService{}
	_, err := svc.Create(context.Background(), CreateSwapParams{ToUserID: uuid.New()})
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestSwapService_Create_Self(t *testing.T) {
	svc := &SwapService{}
	userID := uuid.New()
	_, err := svc.Create(context.Background(), CreateSwapParams{
		FromUserID: &userID, ToUserID: userID,
	})
	if !errors.Is(err, ErrSelfRequest) {
		t.Fatalf("expected ErrSelfRequest, got %v", err)
	}
}

func TestSwapService_Create_SkillNotOffered(t *testing.T) {
	fromID := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return rowFromValues(models.SkillSet{"Guitar"})
		},
	}

	svc := NewSwapService(db)
	_, err := svc.Create(context.Background(), CreateSwapParams{
		FromUserID: &fromID, ToUserID: uuid.New(),
		SkillOffered: "React", SkillWanted: "Python",
	})
	if !errors.Is(err, ErrSkillNotOffered) {
		t.Fatalf("expected ErrSkillNotOffered, got %v", err)
	}
}

func TestSwapService_Create_SenderMissing(t *testing.T) {
	fromID := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return &fakeRow{err: pgx.ErrNoRows}
		},
	}

	svc := NewSwapService(db)
	_, err := svc.Create(context.Background(), CreateSwapParams{
		FromUserID: &fromID, ToUserID: uuid.New(),
		SkillOffered: "React", SkillWanted: "Python",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSwapService_Create_Success(t *testing.T) {
	fromID := uuid.New()
	toID := uuid.New()
	requestID := uuid.New()
	call := 0
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			call++
			if call == 1 {
				return rowFromValues(models.SkillSet{"React", "TypeScript"})
			}
			if !strings.Contains(sql, "'pending'") {
				t.Fatalf("expected insert to start pending, got %q", sql)
			}
			return rowFromValues(swapRowValues(requestID, fromID, toID, models.RequestStatusPending)...)
		},
	}

	svc := NewSwapService(db)
	request, err := svc.Create(context.Background(), CreateSwapParams{
		FromUserID: &fromID, ToUserID: toID,
		SkillOffered: " React ", SkillWanted: "Python",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.ID != requestID || request.Status != models.RequestStatusPending {
		t.Fatalf("unexpected request: %+v", request)
	}
}

func TestSwapService_Create_DuplicatePendingAllowed(t *testing.T) {
	// Two identical creates both succeed; recipients resolve each on its own.
	fromID := uuid.New()
	toID := uuid.New()
	inserts := 0
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			if strings.Contains(sql, "skills_offered FROM users") {
				return rowFromValues(models.SkillSet{"React"})
			}
			inserts++
			return rowFromValues(swapRowValues(uuid.New(), fromID, toID, models.RequestStatusPending)...)
		},
	}

	svc := NewSwapService(db)
	params := CreateSwapParams{
		FromUserID: &fromID, ToUserID: toID,
		SkillOffered: "React", SkillWanted: "Python",
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), params); err != nil {
			t.Fatalf("create %d: unexpected error: %v", i+1, err)
		}
	}
	if inserts != 2 {
		t.Fatalf("expected 2 inserts, got %d", inserts)
	}
}

func TestSwapService_Accept_NotFound(t *testing.T) {
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return &fakeRow{err: pgx.ErrNoRows}
		},
	}

	svc := NewSwapService(db)
	_, err := svc.Accept(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestSwapService_Accept_NotRecipient(t *testing.T) {
	requestID := uuid.New()
	sender := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return rowFromValues(swapRowValues(requestID, sender, uuid.New(), models.RequestStatusPending)...)
		},
	}

	svc := NewSwapService(db)
	// The sender cannot accept their own request.
	_, err := svc.Accept(context.Background(), requestID, sender)
	if !errors.Is(err, ErrNotRequestRecipient) {
		t.Fatalf("expected ErrNotRequestRecipient, got %v", err)
	}
}

func TestSwapService_Accept_NotPending(t *testing.T) {
	requestID := uuid.New()
	recipient := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			if strings.HasPrefix(sql, "UPDATE") {
				t.Fatalf("unexpected update of resolved request: %q", sql)
			}
			return rowFromValues(swapRowValues(requestID, uuid.New(), recipient, models.RequestStatusRejected)...)
		},
	}

	svc := NewSwapService(db)
	_, err := svc.Accept(context.Background(), requestID, recipient)
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestSwapService_Accept_Success(t *testing.T) {
	requestID := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			if strings.HasPrefix(sql, "UPDATE") {
				return rowFromValues(swapRowValues(requestID, sender, recipient, models.RequestStatusAccepted)...)
			}
			return rowFromValues(swapRowValues(requestID, sender, recipient, models.RequestStatusPending)...)
		},
	}

	svc := NewSwapService(db)
	request, err := svc.Accept(context.Background(), requestID, recipient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != models.RequestStatusAccepted {
		t.Fatalf("expected accepted status, got %s", request.Status)
	}
}

func TestSwapService_Reject_Success(t *testing.T) {
	requestID := uuid.New()
	recipient := uuid.New()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			if strings.HasPrefix(sql, "UPDATE") {
				return rowFromValues(swapRowValues(requestID, uuid.New(), recipient, models.RequestStatusRejected)...)
			}
			return rowFromValues(swapRowValues(requestID, uuid.New(), recipient, models.RequestStatusPending)...)
		},
	}

	svc := NewSwapService(db)
	request, err := svc.Reject(context.Background(), requestID, recipient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != models.RequestStatusRejected {
		t.Fatalf("expected rejected status, got %s", request.Status)
	}
}

func TestSwapService_ListFor_RoleAndStatusClauses(t *testing.T) {
	userID := uuid.New()
	cases := []struct {
		role   models.RequestRole
		status models.RequestStatus
		want   string
		args   int
	}{
		{models.RoleIncoming, "", "r.to_user_id = $1", 1},
		{models.RoleOutgoing, "", "r.from_user_id = $1", 1},
		{models.RoleAll, "", "r.to_user_id = $1 OR r.from_user_id = $1", 1},
		{models.RoleIncoming, models.RequestStatusPending, "r.status = $2", 2},
	}

	for _, tc := range cases {
		var captured string
		var capturedArgs []any
		db := &fakeDB{
			QueryFunc: func(ctx context.Context, sql string, args ...any) (Rows, error) {
				captured = sql
				capturedArgs = args
				return &fakeRows{}, nil
			},
		}

		svc := NewSwapService(db)
		if _, err := svc.ListFor(context.Background(), userID, tc.role, tc.status); err != nil {
			t.Fatalf("role %s: unexpected error: %v", tc.role, err)
		}
		if !strings.Contains(captured, tc.want) {
			t.Fatalf("role %s: expected clause %q in %q", tc.role, tc.want, captured)
		}
		if !strings.Contains(captured, "ORDER BY r.created_at DESC") {
			t.Fatalf("role %s: expected newest-first ordering, got %q", tc.role, captured)
		}
		if len(capturedArgs) != tc.args {
			t.Fatalf("role %s: expected %d args, got %v", tc.role, tc.args, capturedArgs)
		}
	}
}

func TestSwapService_ListFor_ScansNames(t *testing.T) {
	userID := uuid.New()
	requestID := uuid.New()
	db := &fakeDB{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (Rows, error) {
			return &fakeRows{rows: [][]any{
				{requestID, uuid.New(), userID, "React", "Python", nil,
					models.RequestStatusPending, time.Now(), "Sarah Chen", "Marcus Johnson"},
			}}, nil
		},
	}

	svc := NewSwapService(db)
	requests, err := svc.ListFor(context.Background(), userID, models.RoleIncoming, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].FromUserName != "Sarah Chen" || requests[0].ToUserName != "Marcus Johnson" {
		t.Fatalf("unexpected names: %+v", requests[0])
	}
}
