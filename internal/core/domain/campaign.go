package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TemporaryIDPrefix marks ids assigned on the client before the server
// acknowledged the campaign.
const TemporaryIDPrefix = "local-"

// OwnerType tells whether a campaign is run by a user profile or a page.
// An empty OwnerType means the campaign has never been confirmed remotely.
type OwnerType string

const (
	OwnerProfile OwnerType = "profile"
	OwnerPage    OwnerType = "page"
)

// Valid checks if the owner type is known.
func (t OwnerType) Valid() bool {
	return t == OwnerProfile || t == OwnerPage
}

// Objective is what the advertiser optimises for.
type Objective string

const (
	ObjectiveViews     Objective = "views"
	ObjectiveMessages  Objective = "messages"
	ObjectiveLink      Objective = "link"
	ObjectiveFollowers Objective = "followers"
)

// Valid checks if the objective is one of the closed set.
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveViews, ObjectiveMessages, ObjectiveLink, ObjectiveFollowers:
		return true
	default:
		return false
	}
}

// Review bounds the automatic review window. EndsAt is fixed once at launch.
type Review struct {
	StartedAt time.Time `json:"startedAt,omitzero"`
	EndsAt    time.Time `json:"endsAt,omitzero"`
}

// IsZero reports whether the campaign was never launched.
func (r Review) IsZero() bool {
	return r.StartedAt.IsZero() && r.EndsAt.IsZero()
}

// PaymentStatus tracks settlement of a campaign.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment describes what the advertiser owes.
type Payment struct {
	Amount      int64         `json:"amount,omitempty"`
	Currency    string        `json:"currency,omitempty"`
	Status      PaymentStatus `json:"status,omitempty"`
	Link        string        `json:"link,omitempty"`
	EmailSentAt *time.Time    `json:"emailSentAt,omitempty"`
}

// Required reports whether the campaign must be paid before going live.
func (p Payment) Required() bool {
	return p.Amount > 0 && p.Status != PaymentPaid
}

// Stats are read-only counters supplied by the analytics collaborator.
type Stats struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
}

// Campaign represents an advertising campaign.
type Campaign struct {
	ID string `json:"id"`
	// TempID is the temporary id the campaign had before the server
	// assigned ID. It lets both copies be recognised as one campaign.
	TempID    string     `json:"tempId,omitempty"`
	OwnerID   string     `json:"ownerId,omitempty"`
	OwnerType OwnerType  `json:"ownerType,omitempty"`
	PostID    string     `json:"postId,omitempty"`
	Creative  Creative   `json:"creative"`
	Objective Objective  `json:"objective,omitempty"`
	Audience  Audience   `json:"audience"`
	Budget    Budget     `json:"budget"`
	Status    Status     `json:"status"`
	Review    Review     `json:"review"`
	Payment   Payment    `json:"payment"`
	Stats     Stats      `json:"stats"`
	Archived  bool       `json:"archived"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// NewTemporaryID returns a fresh client-side id.
func NewTemporaryID() string {
	return TemporaryIDPrefix + uuid.NewString()
}

// IsTemporaryID reports whether id was assigned on the client.
func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, TemporaryIDPrefix)
}

// Confirmed reports whether the server has acknowledged the campaign.
func (c Campaign) Confirmed() bool {
	return c.OwnerType != ""
}

// Identity returns the key a campaign is known by: the server id once
// assigned, the temporary id before that.
func (c Campaign) Identity() string {
	if c.ID != "" {
		return c.ID
	}
	return c.TempID
}

// Keys returns every id the campaign may be referenced by.
func (c Campaign) Keys() []string {
	keys := make([]string, 0, 2)
	if c.ID != "" {
		keys = append(keys, c.ID)
	}
	if c.TempID != "" && c.TempID != c.ID {
		keys = append(keys, c.TempID)
	}
	return keys
}

// HasKey reports whether id refers to this campaign.
func (c Campaign) HasKey(id string) bool {
	return id != "" && (c.ID == id || c.TempID == id)
}

// Editable reports whether content fields may still change.
func (c Campaign) Editable() bool {
	return c.Status == StatusDraft
}

// Clone returns a deep copy so callers cannot mutate stored state through
// shared slices or pointers.
func (c Campaign) Clone() Campaign {
	out := c
	if c.Creative.Media != nil {
		out.Creative.Media = append([]Media(nil), c.Creative.Media...)
	}
	if c.Audience.AgeMin != nil {
		v := *c.Audience.AgeMin
		out.Audience.AgeMin = &v
	}
	if c.Audience.AgeMax != nil {
		v := *c.Audience.AgeMax
		out.Audience.AgeMax = &v
	}
	if c.Payment.EmailSentAt != nil {
		v := *c.Payment.EmailSentAt
		out.Payment.EmailSentAt = &v
	}
	if c.EndedAt != nil {
		v := *c.EndedAt
		out.EndedAt = &v
	}
	return out
}

// Validate checks the field-level invariants of every step filled so far.
// The start date must not precede today only while the campaign is a draft;
// after launch it is checked against the launch day.
func (c Campaign) Validate(now time.Time) error {
	if c.Status != "" && !c.Status.Valid() {
		return NewValidationError("status", "unknown status")
	}
	if c.OwnerType != "" && !c.OwnerType.Valid() {
		return NewValidationError("ownerType", "must be profile or page")
	}
	if c.Objective != "" && !c.Objective.Valid() {
		return NewValidationError("objective", "must be one of views, messages, link, followers")
	}
	if !c.Audience.IsZero() {
		if err := c.Audience.Validate(); err != nil {
			return err
		}
	}
	if !c.Budget.IsZero() {
		if err := c.Budget.Validate(c.scheduleAnchor(now)); err != nil {
			return err
		}
	}
	for i, m := range c.Creative.Media {
		if m.URL == "" {
			return NewValidationError("creative.media."+strconv.Itoa(i)+".url", "is required")
		}
	}
	return nil
}

// scheduleAnchor returns the day the start date is compared with.
func (c Campaign) scheduleAnchor(now time.Time) time.Time {
	if c.Status == "" || c.Status == StatusDraft {
		return now
	}
	if !c.Review.StartedAt.IsZero() {
		return c.Review.StartedAt
	}
	if !c.Budget.StartDate.IsZero() {
		return c.Budget.StartDate
	}
	return now
}

// ValidateLaunch checks the launch guard: objective, audience country and a
// complete valid budget.
func (c Campaign) ValidateLaunch(now time.Time) error {
	if c.Objective == "" {
		return NewValidationError("objective", "is required")
	}
	if c.Audience.Country == "" {
		return NewValidationError("audience.country", "is required")
	}
	if c.Budget.IsZero() {
		return NewValidationError("budget.total", "must be >= 1")
	}
	return c.Validate(now)
}
