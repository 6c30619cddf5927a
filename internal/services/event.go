package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"confhub/internal/calendar"
	"confhub/internal/domain"
	"confhub/internal/filter"
)

// DefaultUpcomingLimit caps the home-page upcoming list when the caller
// passes no limit.
const DefaultUpcomingLimit = 8

type eventService struct {
	repo           domain.EventRepository
	loc            *time.Location
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventService returns the catalog service. loc is the calendar location
// used for month boundaries and date keys.
func NewEventService(repo domain.EventRepository, loc *time.Location, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		loc:            loc,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filters domain.EventFilters) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return filter.Apply(events, filters, s.now().In(s.loc)), nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) FeaturedEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	featured := make([]*domain.Event, 0)
	for _, e := range events {
		if e.IsFeatured {
			featured = append(featured, e)
		}
	}
	return featured, nil
}

func (s *eventService) UpcomingEvents(ctx context.Context, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	now := s.now()
	upcoming := make([]*domain.Event, 0, limit)
	for _, e := range events {
		if e.StartDate.Before(now) {
			continue
		}
		upcoming = append(upcoming, e)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming, nil
}

func (s *eventService) EventsByMonth(ctx context.Context, year, month int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	start, end := calendar.MonthRange(year, month, s.loc)
	inMonth := make([]*domain.Event, 0)
	for _, e := range events {
		if e.StartDate.Before(start) || e.StartDate.After(end) {
			continue
		}
		inMonth = append(inMonth, e)
	}
	sort.SliceStable(inMonth, func(i, j int) bool {
		return inMonth[i].StartDate.Before(inMonth[j].StartDate)
	})
	return inMonth, nil
}

func (s *eventService) GroupedByMonth(ctx context.Context, year, month int) (map[string][]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return calendar.GroupByMonth(events, year, month, s.loc), nil
}

func (s *eventService) GroupedByRange(ctx context.Context, start, end time.Time) (map[string][]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return calendar.GroupByRange(events, start, end, s.loc), nil
}

// SyncEvents pulls events from the source and upserts them as one atomic
// batch. A failed batch leaves the store unchanged.
func (s *eventService) SyncEvents(ctx context.Context, source domain.EventSource, months []string) (int, error) {
	events, err := source.Collect(ctx, months)
	if err != nil {
		return 0, fmt.Errorf("collect events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	n, err := s.repo.UpsertMany(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("upsert events: %w", err)
	}
	return n, nil
}
