package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// levelPrompt is the fixed request sent to the content service.
const levelPrompt = "Generate a themed categorization challenge for a slicing game. " +
	"Pick a fun theme, write a one-line instruction telling the player what " +
	"to slice, and return 8-10 short labels that match the instruction " +
	"(targets) and 8-10 that do not (distractors)."

// DefaultTimeout bounds a single level fetch.
const DefaultTimeout = 15 * time.Second

// Provider supplies level definitions. Implementations include the HTTP
// client and the built-in static fallback.
type Provider interface {
	FetchLevel(ctx context.Context) (*Level, error)
}

// Client fetches levels from the content service over HTTP.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a content client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchLevel posts the fixed challenge prompt and decodes the response.
// Any transport, decode, or schema failure is reported as
// ErrContentUnavailable so the caller can surface a single user-facing
// error.
func (c *Client) FetchLevel(ctx context.Context) (*Level, error) {
	body, err := json.Marshal(map[string]string{"prompt": levelPrompt})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: service returned %d", ErrContentUnavailable, resp.StatusCode)
	}

	var level Level
	if err := json.NewDecoder(resp.Body).Decode(&level); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	return &level, nil
}
