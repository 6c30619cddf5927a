package connpass

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"confhub/internal/domain"
)

// Source implements domain.EventSource on top of the connpass API.
type Source struct {
	client     *Client
	classifier domain.Classifier
	logger     *slog.Logger
	interval   time.Duration
	now        func() time.Time
}

var _ domain.EventSource = (*Source)(nil)

// NewSource returns an event source that fetches one month per request,
// waiting interval between requests to stay polite to the API.
func NewSource(client *Client, classifier domain.Classifier, logger *slog.Logger, interval time.Duration) *Source {
	return &Source{
		client:     client,
		classifier: classifier,
		logger:     logger,
		interval:   interval,
		now:        time.Now,
	}
}

// Collect fetches the given yyyyMM months, keeps conference-scale events,
// dedupes by connpass event id and maps into catalog events. Month fetches
// are best effort: a failed month is logged and skipped; only context
// cancellation aborts the run.
func (s *Source) Collect(ctx context.Context, months []string) ([]*domain.Event, error) {
	var raw []RawEvent
	for i, ym := range months {
		events, err := s.client.FetchMonth(ctx, ym)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("connpass fetch failed", "month", ym, "err", err)
			continue
		}
		s.logger.Info("connpass month fetched", "month", ym, "count", len(events))
		raw = append(raw, events...)

		if s.interval > 0 && i < len(months)-1 {
			select {
			case <-time.After(s.interval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	now := s.now()
	seen := make(map[int]struct{}, len(raw))
	out := make([]*domain.Event, 0, len(raw))
	for _, r := range raw {
		if !IsLikelyConference(r.Title, r.Limit) {
			continue
		}
		if _, ok := seen[r.EventID]; ok {
			continue
		}
		seen[r.EventID] = struct{}{}

		e, err := MapEvent(r, s.classifier, now)
		if err != nil {
			s.logger.Warn("skipping unmappable connpass event", "event_id", r.EventID, "err", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var targetMonthRe = regexp.MustCompile(`^\d{6}$`)

// TargetMonths lists n consecutive yyyyMM tokens starting from base's month.
func TargetMonths(base time.Time, n int) []string {
	// Anchor on the 1st so month stepping never skips a short month.
	first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
	months := make([]string, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, first.AddDate(0, i, 0).Format("200601"))
	}
	return months
}

// ParseTargetMonths extracts valid, deduplicated yyyyMM tokens from a
// comma-separated list.
func ParseTargetMonths(text string) []string {
	var months []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(text, ",") {
		ym := strings.TrimSpace(part)
		if !targetMonthRe.MatchString(ym) {
			continue
		}
		if _, ok := seen[ym]; ok {
			continue
		}
		seen[ym] = struct{}{}
		months = append(months, ym)
	}
	return months
}
