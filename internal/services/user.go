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
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnknownSkillKind   = errors.New("unknown skill kind")
)

const userColumns = `id, email, password_hash, name, location, avatar,
	skills_offered, skills_wanted, rating, availability, is_public,
	created_at, updated_at`

type UserService struct {
	db DB
}

func NewUserService(db DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	var exists bool
	err := s.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", params.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	return s.scanUser(s.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		params.Email, params.PasswordHash, params.Name,
	))
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetPublicByID returns a user only if their profile is public. Private
// profiles are indistinguishable from missing ones.
func (s *UserService) GetPublicByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND is_public = true`, id))
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error) {
	setClauses := []string{}
	args := []any{}
	idx := 1

	addClause := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if params.Name != nil {
		if name := strings.TrimSpace(*params.Name); name != "" {
			addClause("name", name)
		}
	}
	if params.Location != nil {
		addClause("location", nullableText(*params.Location))
	}
	if params.Availability != nil {
		addClause("availability", nullableText(*params.Availability))
	}
	if params.IsPublic != nil {
		addClause("is_public", *params.IsPublic)
	}

	if len(setClauses) == 0 {
		return s.GetByID(ctx, userID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, userID)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), idx, userColumns,
	)

	return s.scanUser(s.db.QueryRow(ctx, query, args...))
}

// AddSkill enforces the skill-set invariants (trimmed, non-empty, unique) at
// the storage boundary rather than trusting the caller's list.
func (s *UserService) AddSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	column, set, err := skillColumn(user, kind)
	if err != nil {
		return nil, err
	}

	updated, err := set.Add(skill)
	if err != nil {
		return nil, err
	}
	if len(updated) == len(set) {
		// Duplicate add is a no-op; nothing to persist.
		return user, nil
	}

	return s.saveSkills(ctx, user, kind, column, updated)
}

// RemoveSkill drops the exact-match entry; removing an absent skill leaves
// the profile untouched.
func (s *UserService) RemoveSkill(ctx context.Context, userID uuid.UUID, kind models.SkillKind, skill string) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	column, set, err := skillColumn(user, kind)
	if err != nil {
		return nil, err
	}

	updated := set.Remove(skill)
	if len(updated) == len(set) {
		return user, nil
	}

	return s.saveSkills(ctx, user, kind, column, updated)
}

func (s *UserService) saveSkills(ctx context.Context, user *models.User, kind models.SkillKind, column string, skills models.SkillSet) (*models.User, error) {
	query := fmt.Sprintf("UPDATE users SET %s = $1, updated_at = NOW() WHERE id = $2", column)
	if _, err := s.db.Exec(ctx, query, []string(skills), user.ID); err != nil {
		return nil, fmt.Errorf("updating %s skills: %w", kind, err)
	}

	if kind == models.SkillKindOffered {
		user.SkillsOffered = skills
	} else {
		user.SkillsWanted = skills
	}
	return user, nil
}

func (s *UserService) scanUser(row Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Location,
		&user.Avatar,
		&user.SkillsOffered,
		&user.SkillsWanted,
		&user.Rating,
		&user.Availability,
		&user.IsPublic,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return user, nil
}

func skillColumn(user *models.User, kind models.SkillKind) (string, models.SkillSet, error) {
	switch kind {
	case models.SkillKindOffered:
		return "skills_offered", user.SkillsOffered, nil
	case models.SkillKindWanted:
		return "skills_wanted", user.SkillsWanted, nil
	default:
		return "", nil, ErrUnknownSkillKind
	}
}

func nullableText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
