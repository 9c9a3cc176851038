package domain

import "time"

// Budget holds the spend limits and schedule of a campaign. Amounts are
// integer currency units. Daily is zero when the user did not set one.
type Budget struct {
	Total        int64     `json:"total,omitempty"`
	Daily        int64     `json:"daily,omitempty"`
	StartDate    time.Time `json:"startDate,omitzero"`
	EndDate      time.Time `json:"endDate,omitzero"`
	DurationDays int       `json:"durationDays,omitempty"`
}

// IsZero reports whether the budget step has not been filled yet.
func (b Budget) IsZero() bool {
	return b.Total == 0 && b.Daily == 0 && b.StartDate.IsZero() && b.EndDate.IsZero()
}

// Validate checks the budget invariants. now anchors the "start date is
// not in the past" rule to a calendar day in UTC.
func (b Budget) Validate(now time.Time) error {
	if b.Total < 1 {
		return NewValidationError("budget.total", "must be >= 1")
	}
	if b.Daily < 0 {
		return NewValidationError("budget.daily", "must be >= 1")
	}
	if b.Daily > b.Total {
		return NewValidationError("budget.daily", "must be <= total")
	}
	if b.StartDate.IsZero() {
		return NewValidationError("budget.startDate", "is required")
	}
	if b.EndDate.IsZero() {
		return NewValidationError("budget.endDate", "is required")
	}
	if TruncateDay(b.StartDate).Before(TruncateDay(now)) {
		return NewValidationError("budget.startDate", "must be >= today")
	}
	if TruncateDay(b.EndDate).Before(TruncateDay(b.StartDate)) {
		return NewValidationError("budget.endDate", "must be >= startDate")
	}
	return nil
}

// TruncateDay returns midnight UTC of t's calendar day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
