// Package geocode enriches free-text locations through an external geocoder.
// Enrichment is best effort; callers fall back to the raw string on any error.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const lookupTimeout = 5 * time.Second

type Client struct {
	address string
	client  *http.Client
}

func NewClient(address string) *Client {
	return &Client{
		address: address,
		client:  &http.Client{Timeout: lookupTimeout},
	}
}

type place struct {
	DisplayName string `json:"display_name"`
}

// Resolve normalizes a location query to the geocoder's display name of the
// best match.
func (c *Client) Resolve(ctx context.Context, query string) (string, error) {

	lookupURL := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.address, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var places []place
	if err := json.Unmarshal(body, &places); err != nil {
		return "", fmt.Errorf("decoding geocoder response: %w", err)
	}
	if len(places) == 0 || places[0].DisplayName == "" {
		return "", fmt.Errorf("no geocoder match for %q", query)
	}

	return places[0].DisplayName, nil
}
