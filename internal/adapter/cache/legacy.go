package cache

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
)

// legacyCampaign is the schema version 1 layout. Amounts were stored as the
// user typed them ("10 000 FCFA") and dates as plain strings.
type legacyCampaign struct {
	ID        string           `json:"id"`
	MongoID   string           `json:"_id"`
	TempID    string           `json:"tempId"`
	OwnerID   string           `json:"ownerId"`
	OwnerType domain.OwnerType `json:"ownerType"`
	PostID    string           `json:"postId"`
	Creative  domain.Creative  `json:"creative"`
	Objective domain.Objective `json:"objective"`
	Audience  domain.Audience  `json:"audience"`
	Budget    struct {
		Total     amount `json:"total"`
		Daily     amount `json:"daily"`
		StartDate day    `json:"startDate"`
		EndDate   day    `json:"endDate"`
	} `json:"budget"`
	Status  string        `json:"status"`
	Review  domain.Review `json:"review"`
	Payment struct {
		Amount      amount               `json:"amount"`
		Currency    string               `json:"currency"`
		Status      domain.PaymentStatus `json:"status"`
		Link        string               `json:"link"`
		EmailSentAt *time.Time           `json:"emailSentAt"`
	} `json:"payment"`
	Stats     domain.Stats `json:"stats"`
	Archived  bool         `json:"archived"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	EndedAt   *time.Time   `json:"endedAt"`
}

func decodeLegacy(data []byte) ([]domain.Campaign, error) {
	var records []legacyCampaign
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(records))
	for _, r := range records {
		id := r.ID
		if id == "" {
			id = r.MongoID
		}
		out = append(out, domain.Campaign{
			ID:        id,
			TempID:    r.TempID,
			OwnerID:   r.OwnerID,
			OwnerType: r.OwnerType,
			PostID:    r.PostID,
			Creative:  r.Creative,
			Objective: r.Objective,
			Audience:  r.Audience,
			Budget: domain.Budget{
				Total:     int64(r.Budget.Total),
				Daily:     int64(r.Budget.Daily),
				StartDate: time.Time(r.Budget.StartDate),
				EndDate:   time.Time(r.Budget.EndDate),
			},
			Status: domain.Status(r.Status),
			Review: r.Review,
			Payment: domain.Payment{
				Amount:      int64(r.Payment.Amount),
				Currency:    r.Payment.Currency,
				Status:      r.Payment.Status,
				Link:        r.Payment.Link,
				EmailSentAt: r.Payment.EmailSentAt,
			},
			Stats:     r.Stats,
			Archived:  r.Archived,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			EndedAt:   r.EndedAt,
		})
	}
	return out, nil
}

// amount accepts a JSON number or a free-form string. Unparseable strings
// decode as zero so one bad field does not drop the whole cache.
type amount int64

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] != '"' {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*a = amount(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := budget.ParseAmount(s)
	if err != nil {
		*a = 0
		return nil
	}
	*a = amount(n)
	return nil
}

// day accepts "YYYY-MM-DD" or RFC 3339 strings.
type day time.Time

func (d *day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		*d = day{}
		return nil
	}
	t, err := budget.ParseDate(s)
	if err != nil {
		*d = day{}
		return nil
	}
	*d = day(t)
	return nil
}
