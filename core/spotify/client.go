package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Moosic/model"
)

// Default Spotify endpoints. Overridable for tests.
const (
	DefaultAuthURL = "https://accounts.spotify.com/api/token"
	DefaultAPIURL  = "https://api.spotify.com/v1"
)

// Config contains configuration for the Spotify client.
type Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	APIURL       string
	Timeout      time.Duration
}

// Client is a music-catalog client for the Spotify Web API using the
// client-credentials flow.
type Client struct {
	httpClient   *http.Client
	authURL      string
	apiURL       string
	clientID     string
	clientSecret string
	tokens       *TokenCache
}

// NewClient creates a Spotify client sharing the given token cache.
func NewClient(config *Config, tokens *TokenCache) *Client {
	authURL := config.AuthURL
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if tokens == nil {
		tokens = NewTokenCache()
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		authURL:      authURL,
		apiURL:       apiURL,
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		tokens:       tokens,
	}
}

// search performs one GET /search call of the given type.
func (c *Client) search(ctx context.Context, query, searchType string, limit int) (*searchResponse, error) {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire bearer token: %w", err)
	}

	searchURL, err := url.Parse(c.apiURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", searchType)
	q.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &sr, nil
}

// SearchTracks searches the catalog for tracks matching the query.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]model.Track, error) {
	sr, err := c.search(ctx, query, "track", limit)
	if err != nil {
		return nil, err
	}
	if sr.Tracks == nil {
		return []model.Track{}, nil
	}
	return mapTracks(sr.Tracks.Items), nil
}

// SearchPlaylists searches the catalog for playlists matching the query.
func (c *Client) SearchPlaylists(ctx context.Context, query string, limit int) ([]model.Playlist, error) {
	sr, err := c.search(ctx, query, "playlist", limit)
	if err != nil {
		return nil, err
	}
	if sr.Playlists == nil {
		return []model.Playlist{}, nil
	}
	return mapPlaylists(sr.Playlists.Items), nil
}
