package domain

// Platform-wide audience age bounds.
const (
	MinAudienceAge = 13
	MaxAudienceAge = 65
)

// Audience describes who should see a campaign.
type Audience struct {
	Country  string `json:"country,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	AgeMin   *int   `json:"ageMin,omitempty"`
	AgeMax   *int   `json:"ageMax,omitempty"`
	Category string `json:"category,omitempty"`
}

// IsZero reports whether the audience step has not been filled yet.
func (a Audience) IsZero() bool {
	return a.Country == "" && a.City == "" && a.District == "" &&
		a.AgeMin == nil && a.AgeMax == nil && a.Category == ""
}

// Validate checks the age bounds and the required country.
func (a Audience) Validate() error {
	if a.AgeMin != nil && (*a.AgeMin < MinAudienceAge || *a.AgeMin > MaxAudienceAge) {
		return NewValidationError("audience.ageMin", "must be between 13 and 65")
	}
	if a.AgeMax != nil && (*a.AgeMax < MinAudienceAge || *a.AgeMax > MaxAudienceAge) {
		return NewValidationError("audience.ageMax", "must be between 13 and 65")
	}
	if a.AgeMin != nil && a.AgeMax != nil && *a.AgeMin > *a.AgeMax {
		return NewValidationError("audience.ageMin", "must be <= ageMax")
	}
	if a.Country == "" {
		return NewValidationError("audience.country", "is required")
	}
	return nil
}
