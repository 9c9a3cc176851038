// Package budget derives campaign duration and daily spend from the total
// budget and date range, and parses user-entered amounts and dates.
package budget

import (
	"math"
	"strings"
	"time"

	"jobboard-ads/internal/core/domain"
)

const day = 24 * time.Hour

// Schedule is the derived part of a budget.
type Schedule struct {
	DurationDays         int
	EffectiveDailyBudget int64
}

// ComputeSchedule returns the number of campaign days and the daily budget
// to spend. An explicit daily amount is kept when 1 <= daily <= total;
// otherwise the total is spread evenly, rounding up so the whole budget
// can be spent.
func ComputeSchedule(total, daily int64, startDate, endDate time.Time) (Schedule, error) {
	days, err := DurationDays(startDate, endDate)
	if err != nil {
		return Schedule{}, err
	}
	if daily >= 1 && daily <= total {
		return Schedule{DurationDays: days, EffectiveDailyBudget: daily}, nil
	}
	effective := (total + int64(days) - 1) / int64(days)
	if effective < 1 {
		effective = 1
	}
	return Schedule{DurationDays: days, EffectiveDailyBudget: effective}, nil
}

// DurationDays counts calendar days from startDate to endDate inclusive.
func DurationDays(startDate, endDate time.Time) (int, error) {
	start := domain.TruncateDay(startDate)
	end := domain.TruncateDay(endDate)
	if end.Before(start) {
		return 0, &domain.InvalidRangeError{Start: start, End: end}
	}
	days := int(end.Sub(start)/day) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// Normalize fills the derived DurationDays of b. Budgets without both
// dates are returned unchanged.
func Normalize(b domain.Budget) (domain.Budget, error) {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return b, nil
	}
	days, err := DurationDays(b.StartDate, b.EndDate)
	if err != nil {
		return b, err
	}
	b.StartDate = domain.TruncateDay(b.StartDate)
	b.EndDate = domain.TruncateDay(b.EndDate)
	b.DurationDays = days
	return b, nil
}

// ParseAmount reads an integer amount from user input such as "10 000 FCFA"
// or "25,000". Every non-digit character is dropped before parsing.
func ParseAmount(input string) (int64, error) {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, &domain.ParseError{Input: input, Reason: "no digits"}
	}
	var n int64
	for _, r := range digits.String() {
		d := int64(r - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, &domain.ParseError{Input: input, Reason: "amount too large"}
		}
		n = n*10 + d
	}
	return n, nil
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, "02/01/2006"}

// ParseDate reads a calendar date and returns midnight UTC of that day.
func ParseDate(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, &domain.ParseError{Input: input, Reason: "empty date"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.TruncateDay(t), nil
		}
	}
	return time.Time{}, &domain.ParseError{Input: input, Reason: "expected YYYY-MM-DD"}
}
