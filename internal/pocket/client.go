// Package pocket talks to the Pocket v3 API and turns its raw records into
// candidate bookmark entries.
package pocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MrSnakeDoc/bonk/internal/utils"
)

// DefaultAPIURL is the Pocket retrieve endpoint.
const DefaultAPIURL = "https://getpocket.com/v3/get"

// RawRecord is one remote record as Pocket returns it. Timestamps come over
// the wire as decimal strings.
type RawRecord struct {
	ResolvedTitle string `json:"resolved_title"`
	ResolvedURL   string `json:"resolved_url"`
	TimeAdded     string `json:"time_added"`
	TimeUpdated   string `json:"time_updated"`
}

// AddedAt parses the remote creation timestamp.
func (r RawRecord) AddedAt() (int64, error) {
	return strconv.ParseInt(r.TimeAdded, 10, 64)
}

// UpdatedAt parses the remote update timestamp.
func (r RawRecord) UpdatedAt() (int64, error) {
	return strconv.ParseInt(r.TimeUpdated, 10, 64)
}

// Client fetches records from the Pocket API.
type Client struct {
	apiURL string
	client *http.Client
}

// NewClient creates a Pocket client. apiURL may be empty to use the default
// endpoint; tests point it at a local server.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
	}
}

type retrieveResponse struct {
	List json.RawMessage `json:"list"`
}

// Fetch returns all records updated since the given unix timestamp. An
// empty result means "nothing new", not an error.
func (c *Client) Fetch(ctx context.Context, creds Credentials, since int64) ([]RawRecord, error) {
	params := url.Values{}
	params.Set("consumer_key", creds.ConsumerKey)
	params.Set("access_token", creds.AccessToken)
	params.Set("since", strconv.FormatInt(since, 10))
	params.Set("detailType", "simple")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pocket request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach pocket: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pocket returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pocket response: %w", err)
	}

	var parsed retrieveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse pocket response: %w", err)
	}

	// When nothing is new the API sends "list": [] instead of an object.
	if len(parsed.List) == 0 || bytes.HasPrefix(bytes.TrimSpace(parsed.List), []byte("[")) {
		return nil, nil
	}

	var records map[string]RawRecord
	if err := json.Unmarshal(parsed.List, &records); err != nil {
		return nil, fmt.Errorf("failed to parse pocket record list: %w", err)
	}

	raws := make([]RawRecord, 0, len(records))
	for _, r := range records {
		raws = append(raws, r)
	}
	return raws, nil
}
