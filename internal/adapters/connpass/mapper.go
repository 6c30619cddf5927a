package connpass

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"confhub/internal/domain"
)

const (
	sourceName     = "connpass"
	eventTimezone  = "Asia/Tokyo"
	maxDescription = 500
	maxSlugLength  = 80
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	slugStripRe    = regexp.MustCompile(`[^\w\x{3000}-\x{9FFF}\s-]`)
	slugSpaceRe    = regexp.MustCompile(`[\s\x{3000}]+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify lowercases the title, keeps word characters and CJK text, turns
// whitespace runs into hyphens and truncates to a URL-friendly length.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	runes := []rune(s)
	if len(runes) > maxSlugLength {
		runes = runes[:maxSlugLength]
	}
	return string(runes)
}

// guessRegion picks a region tag from venue text. Events with no address at
// all are assumed online.
func guessRegion(address, place string) *string {
	text := address + " " + place
	var region string
	switch {
	case containsAny(text, "東京", "渋谷", "新宿", "六本木", "品川", "秋葉原"):
		region = "東京"
	case containsAny(text, "大阪", "梅田", "難波"):
		region = "大阪"
	case strings.Contains(text, "名古屋"):
		region = "名古屋"
	case containsAny(text, "福岡", "博多", "天神"):
		region = "福岡"
	case containsAny(text, "オンライン", "online") || address == "":
		region = "オンライン"
	default:
		region = "その他"
	}
	return &region
}

func guessFormat(address, place, description string) string {
	text := strings.ToLower(address + " " + place + " " + description)
	hasOnline := containsAny(text, "オンライン", "online", "zoom", "youtube")
	hasOffline := address != "" && !containsAny(strings.ToLower(address), "オンライン", "online")

	switch {
	case hasOnline && hasOffline:
		return domain.FormatHybrid
	case hasOnline:
		return domain.FormatOnline
	default:
		return domain.FormatOffline
	}
}

// IsLikelyConference filters connpass results down to conference-scale
// events: a conference-ish title keyword, or 50+ seats.
func IsLikelyConference(title string, limit *int) bool {
	titleLower := strings.ToLower(title)
	hasKeyword := containsAny(titleLower, "カンファレンス", "conference", "conf", "summit", "fest", "フォーラム", "forum", "day", "week")
	isLargeEvent := limit != nil && *limit >= 50
	return hasKeyword || isLargeEvent
}

// MapEvent converts a raw connpass event into a catalog event, classifying
// tags from its text. now stamps created/updated times.
func MapEvent(raw RawEvent, classifier domain.Classifier, now time.Time) (*domain.Event, error) {
	start, err := time.Parse(time.RFC3339, raw.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("event %d: malformed started_at %q: %w", raw.EventID, raw.StartedAt, err)
	}
	var end *time.Time
	if raw.EndedAt != "" {
		t, err := time.Parse(time.RFC3339, raw.EndedAt)
		if err != nil {
			return nil, fmt.Errorf("event %d: malformed ended_at %q: %w", raw.EventID, raw.EndedAt, err)
		}
		end = &t
	}

	description := htmlTagRe.ReplaceAllString(raw.Description, "")
	if runes := []rune(description); len(runes) > maxDescription {
		description = string(runes[:maxDescription])
	}
	text := raw.Title + " " + description

	source := sourceName
	e := &domain.Event{
		ID:               fmt.Sprintf("connpass-%d", raw.EventID),
		Slug:             fmt.Sprintf("%s-%d", Slugify(raw.Title), raw.EventID),
		Title:            raw.Title,
		Description:      &description,
		StartDate:        start,
		EndDate:          end,
		Timezone:         eventTimezone,
		Format:           guessFormat(raw.Address, raw.Place, description),
		Venue:            optional(raw.Place),
		Address:          optional(raw.Address),
		Region:           guessRegion(raw.Address, raw.Place),
		TargetRoles:      classifier.ClassifyRoles(text),
		TechCategories:   classifier.ClassifyTech(text),
		DesignCategories: nil,
		Capacity:         raw.Limit,
		Price:            0,
		OfficialURL:      raw.EventURL,
		TicketURL:        optional(raw.EventURL),
		Source:           &source,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return e, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func containsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
