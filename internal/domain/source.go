package domain

import "context"

// EventSource collects events from an external provider (or a test double).
// Months are yyyyMM tokens.
type EventSource interface {
	Collect(ctx context.Context, months []string) ([]*Event, error)
}

// Classifier infers tags from free text. Implementations are best-effort
// keyword matchers; the filter engine never depends on them.
type Classifier interface {
	ClassifyTech(text string) []string
	ClassifyRoles(text string) []string
}
