package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Valid reports whether s is one of the closed set of statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// RequestRole filters a request listing by the user's side of the exchange.
type RequestRole string

const (
	RoleIncoming RequestRole = "incoming"
	RoleOutgoing RequestRole = "outgoing"
	RoleAll      RequestRole = "all"
)

// SwapRequest records one user's proposal to trade a skill they offer for a
// skill they want from another user. Only the target may change its status,
// and only while it is pending.
type SwapRequest struct {
	ID           uuid.UUID     `json:"id"`
	FromUserID   uuid.UUID     `json:"from_user_id"`
	ToUserID     uuid.UUID     `json:"to_user_id"`
	SkillOffered string        `json:"skill_offered"`
	SkillWanted  string        `json:"skill_wanted"`
	Message      *string       `json:"message,omitempty"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// SwapRequestWithNames joins the counterpart display names for listings.
type SwapRequestWithNames struct {
	SwapRequest
	FromUserName string `json:"from_user_name"`
	ToUserName   string `json:"to_user_name"`
}
