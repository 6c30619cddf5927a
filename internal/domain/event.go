package domain

import (
	"context"
	"time"
)

// Event format values.
const (
	FormatOnline  = "online"
	FormatOffline = "offline"
	FormatHybrid  = "hybrid"
)

// Event represents one conference occurrence. Immutable after creation;
// a re-sync replaces the stored record wholesale, keyed by Slug.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	// Timezone is the IANA name the event was published in. Informational
	// only: comparisons are done on the instants as given.
	Timezone          string     `json:"timezone"`
	Format            string     `json:"format"`
	Venue             *string    `json:"venue"`
	Address           *string    `json:"address"`
	Region            *string    `json:"region"`
	OnlineURL         *string    `json:"online_url"`
	TargetRoles       []string   `json:"target_roles"`
	TechCategories    []string   `json:"tech_categories"`
	DesignCategories  []string   `json:"design_categories"`
	Capacity          *int       `json:"capacity"`
	Price             int        `json:"price"`
	EarlyBirdPrice    *int       `json:"early_bird_price"`
	EarlyBirdDeadline *time.Time `json:"early_bird_deadline"`
	OfficialURL       string     `json:"official_url"`
	TicketURL         *string    `json:"ticket_url"`
	TwitterHashtag    *string    `json:"twitter_hashtag"`
	Source            *string    `json:"source"`
	IsPremium         bool       `json:"is_premium"`
	IsFeatured        bool       `json:"is_featured"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// ListAll returns every stored event ordered by start date ascending.
	ListAll(ctx context.Context) ([]*Event, error)
	// GetBySlug returns the event with the given slug or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// UpsertMany inserts or replaces events keyed by slug in a single
	// transaction. All rows succeed or none do; returns the batch size.
	UpsertMany(ctx context.Context, events []*Event) (int, error)
	// Count returns the number of stored events.
	Count(ctx context.Context) (int, error)
}

// EventService defines the catalog operations consumed by the delivery layer.
type EventService interface {
	ListEvents(ctx context.Context, filters EventFilters) ([]*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	FeaturedEvents(ctx context.Context) ([]*Event, error)
	UpcomingEvents(ctx context.Context, limit int) ([]*Event, error)
	EventsByMonth(ctx context.Context, year, month int) ([]*Event, error)
	GroupedByMonth(ctx context.Context, year, month int) (map[string][]*Event, error)
	GroupedByRange(ctx context.Context, start, end time.Time) (map[string][]*Event, error)
	SyncEvents(ctx context.Context, source EventSource, months []string) (int, error)
}
