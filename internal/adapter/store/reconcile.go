package store

import (
	"cmp"
	"slices"

	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/lifecycle"
)

// Merge combines two copies of the same campaign field by field. remote is
// authoritative for what the server owns: id, owner, stats and the payment
// status once set. For every other field the more recently updated copy
// wins where it has a value, and a value only one side has is kept.
// Status never moves backwards along the lifecycle.
func Merge(local, remote domain.Campaign) domain.Campaign {
	var out domain.Campaign
	if local.UpdatedAt.After(remote.UpdatedAt) {
		out = overlay(remote.Clone(), local)
	} else {
		out = overlay(local.Clone(), remote)
	}

	if remote.ID != "" {
		out.ID = remote.ID
	}
	out.TempID = firstNonEmpty(remote.TempID, local.TempID)
	if out.TempID == "" && domain.IsTemporaryID(local.ID) {
		out.TempID = local.ID
	}
	if out.TempID == out.ID {
		out.TempID = ""
	}
	if remote.OwnerID != "" {
		out.OwnerID = remote.OwnerID
	}
	if remote.OwnerType != "" {
		out.OwnerType = remote.OwnerType
	}
	out.Stats = remote.Stats

	lr, rr := lifecycle.Rank(local.Status), lifecycle.Rank(remote.Status)
	switch {
	case lr > rr:
		out.Status, out.Archived, out.EndedAt = local.Status, local.Archived, clonePtr(local.EndedAt)
	case rr > lr:
		out.Status, out.Archived, out.EndedAt = remote.Status, remote.Archived, clonePtr(remote.EndedAt)
	}
	// The server owns the payment status even while the local status is
	// ahead; a pending push settles it.
	out.Payment.Status = firstNonEmpty(remote.Payment.Status, local.Payment.Status)
	if !remote.Review.IsZero() {
		out.Review = remote.Review
	}
	return out
}

// Identify groups records that refer to the same logical campaign. Two
// records belong together when they share a server id or a temporary id.
// Every record lands in exactly one group; groups keep the order in which
// their first member appears.
func Identify(records []domain.Campaign) [][]domain.Campaign {
	groups := make([][]domain.Campaign, 0, len(records))
	for _, idx := range identifyIndices(records) {
		g := make([]domain.Campaign, 0, len(idx))
		for _, i := range idx {
			g = append(g, records[i])
		}
		groups = append(groups, g)
	}
	return groups
}

// identifyIndices is Identify over positions in records.
func identifyIndices(records []domain.Campaign) [][]int {
	parent := make([]int, len(records))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rb < ra {
			ra, rb = rb, ra
		}
		parent[rb] = ra
	}

	owner := make(map[string]int)
	for i, r := range records {
		for _, k := range r.Keys() {
			if j, ok := owner[k]; ok {
				union(i, j)
			} else {
				owner[k] = i
			}
		}
	}

	index := make(map[int]int)
	var groups [][]int
	for i := range records {
		root := find(i)
		g, ok := index[root]
		if !ok {
			g = len(groups)
			index[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// sortCampaigns orders campaigns newest first, breaking ties by identity so
// the order is reproducible.
func sortCampaigns(items []domain.Campaign) {
	slices.SortStableFunc(items, func(a, b domain.Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Identity(), b.Identity())
	})
}

// overlay copies every field src has a value for onto dst.
func overlay(dst, src domain.Campaign) domain.Campaign {
	src = src.Clone()
	switch {
	case src.ID == "" || src.ID == dst.ID:
	case domain.IsTemporaryID(src.ID) && dst.ID != "" && !domain.IsTemporaryID(dst.ID):
		// a temporary id never replaces the server id
		dst.TempID = firstNonEmpty(dst.TempID, src.ID)
	default:
		if domain.IsTemporaryID(dst.ID) {
			dst.TempID = firstNonEmpty(dst.TempID, dst.ID)
		}
		dst.ID = src.ID
	}
	dst.TempID = firstNonEmpty(src.TempID, dst.TempID)
	if dst.TempID == dst.ID {
		dst.TempID = ""
	}
	dst.OwnerID = firstNonEmpty(src.OwnerID, dst.OwnerID)
	dst.OwnerType = firstNonEmpty(src.OwnerType, dst.OwnerType)
	dst.PostID = firstNonEmpty(src.PostID, dst.PostID)

	dst.Creative.Text = firstNonEmpty(src.Creative.Text, dst.Creative.Text)
	dst.Creative.Link = firstNonEmpty(src.Creative.Link, dst.Creative.Link)
	if len(src.Creative.Media) > 0 {
		dst.Creative.Media = src.Creative.Media
	}

	dst.Objective = firstNonEmpty(src.Objective, dst.Objective)

	dst.Audience.Country = firstNonEmpty(src.Audience.Country, dst.Audience.Country)
	dst.Audience.City = firstNonEmpty(src.Audience.City, dst.Audience.City)
	dst.Audience.District = firstNonEmpty(src.Audience.District, dst.Audience.District)
	dst.Audience.Category = firstNonEmpty(src.Audience.Category, dst.Audience.Category)
	if src.Audience.AgeMin != nil {
		dst.Audience.AgeMin = src.Audience.AgeMin
	}
	if src.Audience.AgeMax != nil {
		dst.Audience.AgeMax = src.Audience.AgeMax
	}

	dst.Budget.Total = firstNonZero(src.Budget.Total, dst.Budget.Total)
	dst.Budget.Daily = firstNonZero(src.Budget.Daily, dst.Budget.Daily)
	dst.Budget.DurationDays = firstNonZero(src.Budget.DurationDays, dst.Budget.DurationDays)
	if !src.Budget.StartDate.IsZero() {
		dst.Budget.StartDate = src.Budget.StartDate
	}
	if !src.Budget.EndDate.IsZero() {
		dst.Budget.EndDate = src.Budget.EndDate
	}

	dst.Status = firstNonEmpty(src.Status, dst.Status)
	if !src.Review.IsZero() {
		dst.Review = src.Review
	}

	dst.Payment.Amount = firstNonZero(src.Payment.Amount, dst.Payment.Amount)
	dst.Payment.Currency = firstNonEmpty(src.Payment.Currency, dst.Payment.Currency)
	dst.Payment.Status = firstNonEmpty(src.Payment.Status, dst.Payment.Status)
	dst.Payment.Link = firstNonEmpty(src.Payment.Link, dst.Payment.Link)
	if src.Payment.EmailSentAt != nil {
		dst.Payment.EmailSentAt = src.Payment.EmailSentAt
	}

	if src.Stats != (domain.Stats{}) {
		dst.Stats = src.Stats
	}
	dst.Archived = dst.Archived || src.Archived
	if src.EndedAt != nil {
		dst.EndedAt = src.EndedAt
	}
	if dst.CreatedAt.IsZero() || (!src.CreatedAt.IsZero() && src.CreatedAt.Before(dst.CreatedAt)) {
		dst.CreatedAt = src.CreatedAt
	}
	if src.UpdatedAt.After(dst.UpdatedAt) {
		dst.UpdatedAt = src.UpdatedAt
	}
	return dst
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero[T int | int64](values ...T) T {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
