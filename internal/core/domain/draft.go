package domain

import "time"

// DraftMode tells where the creative of a draft comes from.
type DraftMode string

const (
	DraftFromPost DraftMode = "post"
	DraftInline   DraftMode = "inline"
)

// Draft is the in-progress wizard state saved before a campaign exists.
// It has no id and no status.
type Draft struct {
	Mode      DraftMode `json:"mode"`
	Objective Objective `json:"objective,omitempty"`
	Audience  Audience  `json:"audience"`
	Budget    Budget    `json:"budget"`
	PostID    string    `json:"postId,omitempty"`
	Creative  Creative  `json:"creative"`
	// PageID is set when the campaign runs on behalf of a page rather than
	// the user's own profile.
	PageID    string    `json:"pageId,omitempty"`
	SavedAt   time.Time `json:"savedAt"`
}

// Validate checks that the draft refers to content and that every filled
// step is consistent.
func (d Draft) Validate(now time.Time) error {
	switch d.Mode {
	case DraftFromPost:
		if d.PostID == "" {
			return NewValidationError("postId", "is required when mode is post")
		}
	case DraftInline:
		if d.Creative.IsZero() {
			return NewValidationError("creative", "is required when mode is inline")
		}
	default:
		return NewValidationError("mode", "must be post or inline")
	}
	return d.Campaign().Validate(now)
}

// Campaign returns the draft's content as an unsaved campaign without
// identity or status.
func (d Draft) Campaign() Campaign {
	return Campaign{
		PostID:    d.PostID,
		Creative:  d.Creative,
		Objective: d.Objective,
		Audience:  d.Audience,
		Budget:    d.Budget,
	}.Clone()
}
