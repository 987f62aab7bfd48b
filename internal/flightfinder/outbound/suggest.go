// Package outbound holds the best-effort external clients. Both are
// enhancements at the engine boundary: a timeout, transport error, or
// malformed body surfaces as an error that callers recover from locally,
// never as a failed query.
package outbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Suggestion is one externally sourced airport candidate. Entries missing
// an IATA code or city are discarded before they reach callers.
type Suggestion struct {
	IATA    string  `json:"iata"`
	ICAO    string  `json:"icao"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

const maxSuggestions = 10

type SuggestClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSuggestClient builds a client for the airports suggestion API. An
// empty apiKey disables the client: Enabled reports false and callers
// skip straight to the local directory.
func NewSuggestClient(baseURL, apiKey string, timeout time.Duration) *SuggestClient {
	return &SuggestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *SuggestClient) Enabled() bool {
	return c.apiKey != ""
}

// Suggest queries the API by city, by name for longer queries, and by
// IATA code for exact 3-character queries, then merges and dedups the
// results. Only entries carrying both an IATA code and a city survive.
func (c *SuggestClient) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := []url.Values{{"city": {query}}}
	if len(query) > 3 {
		params = append(params, url.Values{"name": {query}})
	}
	if len(query) == 3 {
		params = append(params, url.Values{"iata": {strings.ToUpper(query)}})
	}

	merged := make([]Suggestion, 0, maxSuggestions)
	seen := make(map[string]struct{})
	var lastErr error

	for _, values := range params {
		batch, err := c.fetch(ctx, values)
		if err != nil {
			lastErr = err
			continue
		}
		for _, suggestion := range batch {
			if suggestion.IATA == "" || suggestion.City == "" {
				continue
			}
			if _, dup := seen[suggestion.IATA]; dup {
				continue
			}
			seen[suggestion.IATA] = struct{}{}
			merged = append(merged, suggestion)
		}
	}

	if len(merged) == 0 && lastErr != nil {
		return nil, lastErr
	}
	if len(merged) > maxSuggestions {
		merged = merged[:maxSuggestions]
	}
	return merged, nil
}

func (c *SuggestClient) fetch(ctx context.Context, values url.Values) ([]Suggestion, error) {
	values.Set("limit", "6")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/airports?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest status %d", resp.StatusCode)
	}

	var suggestions []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("suggest decode: %w", err)
	}
	return suggestions, nil
}
