// Package connpass collects conference events from the connpass API and maps
// them into catalog events. Classification is a best-effort keyword matcher;
// the catalog core never depends on it.
package connpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	defaultBaseURL = "https://connpass.com/api/v1/event/"
	userAgent      = "ConfHub/0.1 (+https://localhost)"
)

// RawEvent is one event in the connpass API response.
type RawEvent struct {
	EventID     int    `json:"event_id"`
	Title       string `json:"title"`
	Catch       string `json:"catch"`
	Description string `json:"description"`
	EventURL    string `json:"event_url"`
	StartedAt   string `json:"started_at"`
	EndedAt     string `json:"ended_at"`
	Limit       *int   `json:"limit"`
	Address     string `json:"address"`
	Place       string `json:"place"`
	UpdatedAt   string `json:"updated_at"`
}

type apiResponse struct {
	ResultsReturned  int        `json:"results_returned"`
	ResultsAvailable int        `json:"results_available"`
	ResultsStart     int        `json:"results_start"`
	Events           []RawEvent `json:"events"`
}

// Client calls the connpass event search API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient returns a connpass API client.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{client: client, baseURL: defaultBaseURL}
}

// FetchMonth fetches conference-flavored events for one yyyyMM month.
func (c *Client) FetchMonth(ctx context.Context, ym string) ([]RawEvent, error) {
	params := url.Values{}
	params.Set("keyword", "カンファレンス")
	params.Set("keyword_or", "conference,conf,summit,fest")
	params.Set("count", "100")
	params.Set("order", "2")
	params.Set("ym", ym)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from connpass: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("connpass api returned status: %d", resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode connpass response: %w", err)
	}
	return data.Events, nil
}
