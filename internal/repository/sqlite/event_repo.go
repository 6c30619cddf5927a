// Package sqlite is the embedded store used for local and single-node
// deployments. Timestamps are stored as RFC 3339 text; a row with an
// unparseable start date surfaces as an error from the scan rather than
// being silently skipped.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"confhub/internal/domain"
)

// Open opens (or creates) the sqlite database at path and bootstraps the
// schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB enables WAL mode and creates the events table.
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT NOT NULL,
		slug TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT,
		timezone TEXT NOT NULL DEFAULT 'Asia/Tokyo',
		format TEXT NOT NULL,
		venue TEXT,
		address TEXT,
		region TEXT,
		online_url TEXT,
		target_roles TEXT NOT NULL DEFAULT '[]',
		tech_categories TEXT NOT NULL DEFAULT '[]',
		design_categories TEXT NOT NULL DEFAULT '[]',
		capacity INTEGER,
		price INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
		early_bird_price INTEGER,
		early_bird_deadline TEXT,
		official_url TEXT NOT NULL,
		ticket_url TEXT,
		twitter_hashtag TEXT,
		source TEXT,
		is_premium INTEGER NOT NULL DEFAULT 0,
		is_featured INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_start_date ON events(start_date);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
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
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = ? LIMIT 1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// UpsertMany writes the batch inside one transaction; on any failure the
// store is left unchanged.
func (r *eventRepository) UpsertMany(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert batch: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, upsertEventQuery)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()
	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, upsertArgs(e)...); err != nil {
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
		id, e.Slug, e.Title, e.Description, formatTime(e.StartDate), formatTimePtr(e.EndDate), e.Timezone, e.Format,
		e.Venue, e.Address, e.Region, e.OnlineURL,
		marshalTags(e.TargetRoles), marshalTags(e.TechCategories), marshalTags(e.DesignCategories),
		e.Capacity, e.Price, e.EarlyBirdPrice, formatTimePtr(e.EarlyBirdDeadline), e.OfficialURL, e.TicketURL,
		e.TwitterHashtag, e.Source, boolInt(e.IsPremium), boolInt(e.IsFeatured), formatTime(createdAt), formatTime(updatedAt),
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
		startRaw                                        string
		endNull, ebDeadlineNull                         sql.NullString
		capNull, ebPriceNull                            sql.NullInt64
		rolesRaw, techRaw, designRaw                    string
		premium, featured                               int
		createdRaw, updatedRaw                          string
	)
	err := row.Scan(
		&e.ID, &e.Slug, &e.Title, &descNull, &startRaw, &endNull, &e.Timezone, &e.Format,
		&venueNull, &addrNull, &regionNull, &onlineNull, &rolesRaw, &techRaw, &designRaw,
		&capNull, &e.Price, &ebPriceNull, &ebDeadlineNull, &e.OfficialURL, &ticketNull,
		&hashtagNull, &sourceNull, &premium, &featured, &createdRaw, &updatedRaw,
	)
	if err != nil {
		return nil, err
	}

	// Timestamp parse failures are propagated, not tolerated: upstream
	// validation owns timestamp well-formedness.
	if e.StartDate, err = time.Parse(time.RFC3339Nano, startRaw); err != nil {
		return nil, fmt.Errorf("event %q: malformed start_date: %w", e.Slug, err)
	}
	if e.EndDate, err = parseTimePtr(endNull); err != nil {
		return nil, fmt.Errorf("event %q: malformed end_date: %w", e.Slug, err)
	}
	if e.EarlyBirdDeadline, err = parseTimePtr(ebDeadlineNull); err != nil {
		return nil, fmt.Errorf("event %q: malformed early_bird_deadline: %w", e.Slug, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdRaw); err != nil {
		return nil, fmt.Errorf("event %q: malformed created_at: %w", e.Slug, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedRaw); err != nil {
		return nil, fmt.Errorf("event %q: malformed updated_at: %w", e.Slug, err)
	}

	e.Description = nullStr(descNull)
	e.Venue = nullStr(venueNull)
	e.Address = nullStr(addrNull)
	e.Region = nullStr(regionNull)
	e.OnlineURL = nullStr(onlineNull)
	e.TicketURL = nullStr(ticketNull)
	e.TwitterHashtag = nullStr(hashtagNull)
	e.Source = nullStr(sourceNull)
	if capNull.Valid {
		c := int(capNull.Int64)
		e.Capacity = &c
	}
	if ebPriceNull.Valid {
		p := int(ebPriceNull.Int64)
		e.EarlyBirdPrice = &p
	}
	e.IsPremium = premium == 1
	e.IsFeatured = featured == 1
	e.TargetRoles = unmarshalTags(rolesRaw)
	e.TechCategories = unmarshalTags(techRaw)
	e.DesignCategories = unmarshalTags(designRaw)
	return e, nil
}

// timeLayout is fixed width, unlike RFC3339Nano which drops trailing
// fractional zeros. Stored values must sort lexicographically in
// chronological order because ListAll orders by the TEXT column.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

func unmarshalTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
