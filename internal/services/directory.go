package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillswaphq/skillswap/internal/models"
)

// DefaultPageSize matches the directory's three-card layout.
const DefaultPageSize = 3

// DirectoryQuery carries the browse filters. Zero values mean "no filter".
type DirectoryQuery struct {
	Text         string
	Availability string
	Page         int
	PageSize     int
}

// DirectoryPage is one page of filtered profiles plus the totals the client
// needs to render pagination controls.
type DirectoryPage struct {
	Profiles     []models.PublicProfile `json:"profiles"`
	TotalMatches int                    `json:"total_matches"`
	TotalPages   int                    `json:"total_pages"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
}

// DirectoryService filters the public roster in process. The roster is small
// enough that one ordered scan beats maintaining search indexes.
type DirectoryService struct {
	db DB
}

func NewDirectoryService(db DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// Browse loads the public roster and applies the text and availability
// filters, then slices out the requested page.
func (s *DirectoryService) Browse(ctx context.Context, query DirectoryQuery) (*DirectoryPage, error) {
	roster, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	matched := FilterProfiles(roster, query.Text, query.Availability)
	return Paginate(matched, query.Page, query.PageSize), nil
}

func (s *DirectoryService) loadRoster(ctx context.Context) ([]models.PublicProfile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, location, avatar, skills_offered, skills_wanted,
		        rating, availability
		 FROM users
		 WHERE is_public = true
		 ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying public roster: %w", err)
	}
	defer rows.Close()

	var roster []models.PublicProfile
	for rows.Next() {
		var p models.PublicProfile
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Location,
			&p.Avatar,
			&p.SkillsOffered,
			&p.SkillsWanted,
			&p.Rating,
			&p.Availability,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		roster = append(roster, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roster: %w", err)
	}
	return roster, nil
}

// FilterProfiles keeps the profiles matching both the text and availability
// filters, preserving the roster's order. Matching is case-insensitive
// substring matching throughout.
func FilterProfiles(roster []models.PublicProfile, text, availability string) []models.PublicProfile {
	matched := []models.PublicProfile{}
	for _, p := range roster {
		if matchesText(p, text) && matchesAvailability(p, availability) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchesText checks the profile name and both skill lists. An empty filter
// matches everyone.
func matchesText(p models.PublicProfile, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
		return true
	}
	return p.SkillsOffered.ContainsFold(text) || p.SkillsWanted.ContainsFold(text)
}

// matchesAvailability treats "" and "all" as no filter. A profile with no
// recorded availability never matches a concrete filter.
func matchesAvailability(p models.PublicProfile, availability string) bool {
	availability = strings.TrimSpace(availability)
	if availability == "" || strings.EqualFold(availability, "all") {
		return true
	}
	if p.Availability == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*p.Availability), strings.ToLower(availability))
}

// Paginate slices the matched profiles into the requested page. Pages are
// 1-based; a page past the end yields an empty (non-nil) profile list with
// the totals intact.
func Paginate(matched []models.PublicProfile, page, pageSize int) *DirectoryPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(matched) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	profiles := []models.PublicProfile{}
	if start < len(matched) {
		end := start + pageSize
		if end > len(matched) {
			end = len(matched)
		}
		profiles = matched[start:end]
	}

	return &DirectoryPage{
		Profiles:     profiles,
		TotalMatches: len(matched),
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     pageSize,
	}
}
