package domain

import "strings"

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusReview          Status = "review"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusActive          Status = "active"
	StatusPaused          Status = "paused"
	StatusEnded           Status = "ended"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Valid checks if the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusAwaitingPayment,
		StatusActive, StatusPaused, StatusEnded:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition can leave the status.
func (s Status) Terminal() bool {
	return s == StatusEnded
}

// Label returns a human-readable name for the status. Every surface that
// shows a status uses this mapping.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusReview:
		return "In review"
	case StatusAwaitingPayment:
		return "Awaiting payment"
	case StatusActive:
		return "Active"
	case StatusPaused:
		return "Paused"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// ParseStatus normalises a status label, accepting the legacy labels older
// clients stored in their cache.
func ParseStatus(value string) (Status, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "-", "_")
	switch v {
	case "draft":
		return StatusDraft, true
	case "review", "in_review", "pending", "pending_review":
		return StatusReview, true
	case "awaiting_payment", "payment", "unpaid":
		return StatusAwaitingPayment, true
	case "active", "running":
		return StatusActive, true
	case "paused":
		return StatusPaused, true
	case "ended", "completed", "archived", "terminated":
		return StatusEnded, true
	default:
		return "", false
	}
}
