// Package nbastats is the client for the upstream player statistics source.
// The provider asks for a minimum 0.6s delay between calls; the client
// enforces it so no caller has to think about it.
package nbastats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

const (
	DefaultBaseURL = "https://stats.hoopcast.io/api/v1"

	// CourtesyDelay is the provider's documented minimum spacing between
	// requests
	CourtesyDelay = 600 * time.Millisecond
)

// ErrPlayerNotFound means the provider could not resolve the player name
var ErrPlayerNotFound = errors.New("player not found")

// Client fetches player game logs and career stats
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string

	mu       sync.Mutex
	lastCall time.Time
}

// New creates a stats client against the default provider endpoint
func New() *Client {
	return NewWithBaseURL(DefaultBaseURL)
}

// NewWithBaseURL creates a stats client against a specific endpoint.
// Used by tests to point at a local fixture server.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   baseURL,
		userAgent: "Mozilla/5.0 (compatible; HoopcastBot/1.0)",
	}
}

// gameLogResponse is the provider's game log payload, most recent first
type gameLogResponse struct {
	Player string            `json:"player"`
	Games  []models.GameLine `json:"games"`
}

// careerResponse is the provider's career table payload, oldest first
type careerResponse struct {
	Player  string              `json:"player"`
	Seasons []models.SeasonLine `json:"seasons"`
}

// RecentGames fetches a player's most recent games for a season, most
// recent first, capped at numGames. Fewer games than requested is not an
// error; the caller's projection method decides what is enough.
func (c *Client) RecentGames(ctx context.Context, playerName string, numGames int, season string) (models.RecentWindow, error) {
	endpoint := fmt.Sprintf("%s/players/gamelog?player=%s&season=%s&limit=%d",
		c.baseURL, url.QueryEscape(playerName), url.QueryEscape(season), numGames)

	var payload gameLogResponse
	if err := c.fetch(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	if len(payload.Games) > numGames {
		payload.Games = payload.Games[:numGames]
	}

	return models.RecentWindow(payload.Games), nil
}

// CareerStats fetches a player's regular-season career table, oldest first
func (c *Client) CareerStats(ctx context.Context, playerName string) (models.CareerSeries, error) {
	endpoint := fmt.Sprintf("%s/players/career?player=%s", c.baseURL, url.QueryEscape(playerName))

	var payload careerResponse
	if err := c.fetch(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return models.CareerSeries(payload.Seasons), nil
}

// fetch makes a rate-limited GET request and decodes the JSON response
func (c *Client) fetch(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.waitCourtesy(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrPlayerNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stats provider error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// waitCourtesy blocks until the courtesy delay since the previous request
// has elapsed
func (c *Client) waitCourtesy(ctx context.Context) error {
	c.mu.Lock()
	var wait time.Duration
	if !c.lastCall.IsZero() {
		wait = CourtesyDelay - time.Since(c.lastCall)
	}
	if wait < 0 {
		wait = 0
	}
	// lastCall records when this request fires, which may be in the future
	// if we are about to sleep
	c.lastCall = time.Now().Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
