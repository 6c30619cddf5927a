// Package filter parses, encodes and applies event filter specifications.
// Parsing is tolerant and never fails; encoding is canonical so that
// Parse(Encode(f)) == f for tag values free of commas.
package filter

import (
	"net/url"
	"strings"
	"time"

	"confhub/internal/calendar"
	"confhub/internal/domain"
)

// Recognized query parameter keys, in canonical encoding order.
var paramOrder = []string{
	"roles",
	"techCategories",
	"designCategories",
	"format",
	"size",
	"priceType",
	"region",
	"period",
	"keyword",
}

// Parse builds a fully-populated filter specification from URL query values.
// Absent or empty parameters degrade to "no constraint". Enum tokens are not
// validated here: unknown values are carried as-is and match nothing when
// applied. A whitespace-only keyword is an active constraint; only the empty
// string means "no constraint".
func Parse(params url.Values) domain.EventFilters {
	return domain.EventFilters{
		Roles:            splitTags(params.Get("roles")),
		TechCategories:   splitTags(params.Get("techCategories")),
		DesignCategories: splitTags(params.Get("designCategories")),
		Format:           params.Get("format"),
		Size:             params.Get("size"),
		PriceType:        params.Get("priceType"),
		Region:           params.Get("region"),
		Period:           params.Get("period"),
		Keyword:          params.Get("keyword"),
	}
}

// splitTags splits a comma-joined tag list. The split is verbatim: commas
// inside a tag value are not escaped anywhere in the contract, so "a,,b"
// yields three tags, one of them empty.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Encode renders the active constraints as a canonical query string in fixed
// field order (roles, techCategories, designCategories, format, size,
// priceType, region, period, keyword). Inactive fields are omitted.
// url.Values.Encode is deliberately not used: it orders keys alphabetically.
func Encode(f domain.EventFilters) string {
	pairs := make([]string, 0, len(paramOrder))
	add := func(key, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, key+"="+url.QueryEscape(value))
	}

	add("roles", strings.Join(f.Roles, ","))
	add("techCategories", strings.Join(f.TechCategories, ","))
	add("designCategories", strings.Join(f.DesignCategories, ","))
	add("format", f.Format)
	add("size", f.Size)
	add("priceType", f.PriceType)
	add("region", f.Region)
	add("period", f.Period)
	add("keyword", f.Keyword)

	return strings.Join(pairs, "&")
}

// Apply returns the sub-sequence of events satisfying every active
// constraint, in the input order (stable, no re-sort). Constraints combine
// with AND across categories and OR within a multi-valued category. The
// period constraint is resolved against now (and now's location).
func Apply(events []*domain.Event, f domain.EventFilters, now time.Time) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if Matches(e, f, now) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single event satisfies every active constraint.
func Matches(e *domain.Event, f domain.EventFilters, now time.Time) bool {
	if len(f.Roles) > 0 && !anyTagMatch(f.Roles, e.TargetRoles) {
		return false
	}
	if len(f.TechCategories) > 0 && !anyTagMatch(f.TechCategories, e.TechCategories) {
		return false
	}
	if len(f.DesignCategories) > 0 && !anyTagMatch(f.DesignCategories, e.DesignCategories) {
		return false
	}
	if f.Format != "" && e.Format != f.Format {
		return false
	}
	if f.Size != "" && !matchesSize(e.Capacity, f.Size) {
		return false
	}
	if f.PriceType != "" && !matchesPrice(e, f.PriceType) {
		return false
	}
	if f.Region != "" && (e.Region == nil || *e.Region != f.Region) {
		return false
	}
	if f.Period != "" {
		start, end, ok := calendar.ResolvePeriod(f.Period, now)
		if !ok {
			// Unrecognized period token: active constraint that matches nothing.
			return false
		}
		if e.StartDate.Before(start) || e.StartDate.After(end) {
			return false
		}
	}
	if f.Keyword != "" && !matchesKeyword(e, f.Keyword) {
		return false
	}
	return true
}

// anyTagMatch reports whether the event carries at least one requested tag.
func anyTagMatch(requested, have []string) bool {
	for _, want := range requested {
		for _, tag := range have {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// matchesSize buckets capacity as small <= 100 < medium <= 500 < large.
// Unknown capacity always passes: events are never excluded for missing
// metadata.
func matchesSize(capacity *int, size string) bool {
	if capacity == nil {
		return true
	}
	switch size {
	case domain.SizeSmall:
		return *capacity <= 100
	case domain.SizeMedium:
		return *capacity > 100 && *capacity <= 500
	case domain.SizeLarge:
		return *capacity > 500
	default:
		return false
	}
}

func matchesPrice(e *domain.Event, priceType string) bool {
	switch priceType {
	case domain.PriceFree:
		return e.Price == 0
	case domain.PricePaid:
		return e.Price > 0
	case domain.PriceEarlyBird:
		// Deadline is not checked against the current time.
		return e.EarlyBirdPrice != nil
	default:
		return false
	}
}

// matchesKeyword is a case-insensitive substring match against title or
// description. A nil description never matches.
func matchesKeyword(e *domain.Event, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(e.Title), kw) {
		return true
	}
	return e.Description != nil && strings.Contains(strings.ToLower(*e.Description), kw)
}
