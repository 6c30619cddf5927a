package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"confhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, slug, title, description, start_date, end_date, timezone, format,
		venue, address, region, online_url, target_roles, tech_categories, design_categories,
		capacity, price, early_bird_price, early_bird_deadline, official_url, ticket_url,
		twitter_hashtag, source, is_premium, is_featured, created_at, updated_at`

const upsertEventQuery = `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (slug) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			description = excluded.description,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			timezone = excluded.timezone,
			format = excluded.format,
			venue = excluded.venue,
			address = excluded.address,
			region = excluded.region,
			online_url = excluded.online_url,
			target_roles = excluded.target_roles,
			tech_categories = excluded.tech_categories,
			design_categories = excluded.design_categories,
			capacity = excluded.capacity,
			price = excluded.price,
			early_bird_price = excluded.early_bird_price,
			early_bird_deadline = excluded.early_bird_deadline,
			official_url = excluded.official_url,
			ticket_url = excluded.ticket_url,
			twitter_hashtag = excluded.twitter_hashtag,
			source = excluded.source,
			is_premium = excluded.is_premium,
			is_featured = excluded.is_featured,
			updated_at = excluded.updated_at
	`

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// UpsertMany writes the batch inside one transaction so a sync either lands
// completely or not at all; readers never observe a partial batch.
func (r *eventRepository) UpsertMany(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert batch: %w", err)
	}
	for _, e := range events {
		if _, err := tx.ExecContext(ctx, upsertEventQuery, upsertArgs(e)...); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert event %q: %w", e.Slug, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert batch: %w", err)
	}
	return len(events), nil
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func upsertArgs(e *domain.Event) []any {
	now := time.Now()
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := e.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return []any{
		id, e.Slug, e.Title, e.Description, e.StartDate, e.EndDate, e.Timezone, e.Format,
		e.Venue, e.Address, e.Region, e.OnlineURL,
		marshalTags(e.TargetRoles), marshalTags(e.TechCategories), marshalTags(e.DesignCategories),
		e.Capacity, e.Price, e.EarlyBirdPrice, e.EarlyBirdDeadline, e.OfficialURL, e.TicketURL,
		e.TwitterHashtag, e.Source, e.IsPremium, e.IsFeatured, createdAt, updatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		descNull, venueNull, addrNull, regionNull       sql.NullString
		onlineNull, ticketNull, hashtagNull, sourceNull sql.NullString
		endNull, ebDeadlineNull                         sql.NullTime
		capNull, ebPriceNull                            sql.NullInt64
		rolesRaw, techRaw, designRaw                    []byte
	)
	err := row.Scan(
		&e.ID, &e.Slug, &e.Title, &descNull, &e.StartDate, &endNull, &e.Timezone, &e.Format,
		&venueNull, &addrNull, &regionNull, &onlineNull, &rolesRaw, &techRaw, &designRaw,
		&capNull, &e.Price, &ebPriceNull, &ebDeadlineNull, &e.OfficialURL, &ticketNull,
		&hashtagNull, &sourceNull, &e.IsPremium, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = nullStr(descNull)
	e.Venue = nullStr(venueNull)
	e.Address = nullStr(addrNull)
	e.Region = nullStr(regionNull)
	e.OnlineURL = nullStr(onlineNull)
	e.TicketURL = nullStr(ticketNull)
	e.TwitterHashtag = nullStr(hashtagNull)
	e.Source = nullStr(sourceNull)
	if endNull.Valid {
		e.EndDate = &endNull.Time
	}
	if ebDeadlineNull.Valid {
		e.EarlyBirdDeadline = &ebDeadlineNull.Time
	}
	if capNull.Valid {
		c := int(capNull.Int64)
		e.Capacity = &c
	}
	if ebPriceNull.Valid {
		p := int(ebPriceNull.Int64)
		e.EarlyBirdPrice = &p
	}
	e.TargetRoles = unmarshalTags(rolesRaw)
	e.TechCategories = unmarshalTags(techRaw)
	e.DesignCategories = unmarshalTags(designRaw)
	return e, nil
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// Tag sets are stored as JSON text columns.
func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

func unmarshalTags(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
