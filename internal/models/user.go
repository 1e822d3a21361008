package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	Location      *string   `json:"location,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	SkillsOffered SkillSet  `json:"skills_offered"`
	SkillsWanted  SkillSet  `json:"skills_wanted"`
	Rating        float64   `json:"rating"`
	Availability  *string   `json:"availability,omitempty"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
}

// UpdateProfileParams carries the owner-editable profile fields. Nil fields
// are left unchanged.
type UpdateProfileParams struct {
	Name         *string
	Location     *string
	Availability *string
	IsPublic     *bool
}

// SkillKind selects which of a user's two skill lists an edit targets.
type SkillKind string

const (
	SkillKindOffered SkillKind = "offered"
	SkillKindWanted  SkillKind = "wanted"
)

// PublicProfile is the directory-facing view of a user.
type PublicProfile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      *string   `json:"location,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	SkillsOffered SkillSet  `json:"skills_offered"`
	SkillsWanted  SkillSet  `json:"skills_wanted"`
	Rating        float64   `json:"rating"`
	Availability  *string   `json:"availability,omitempty"`
}

// Public projects the user onto its directory view.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:            u.ID,
		Name:          u.Name,
		Location:      u.Location,
		Avatar:        u.Avatar,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Rating:        u.Rating,
		Availability:  u.Availability,
	}
}
