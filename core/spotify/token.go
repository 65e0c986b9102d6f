package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"Moosic/logger"
)

// TokenCache holds the process-wide client-credentials bearer token with
// its expiry. Callers pass the cache explicitly so tests can substitute a
// pre-seeded one. Concurrent callers may race to refresh; a duplicate
// refresh costs one extra token request and any fresh token wins, so
// there is no single-flight guard.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenCache creates an empty token cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

// Get returns the cached token if it is still fresh.
func (tc *TokenCache) Get() (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.token == "" || time.Now().After(tc.expiresAt) {
		return "", false
	}
	return tc.token, true
}

// Set stores a token with its lifetime, keeping a 30 second safety margin
// so a token is never used right at its expiry.
func (tc *TokenCache) Set(token string, ttl time.Duration) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = token
	tc.expiresAt = time.Now().Add(ttl - 30*time.Second)
}

// tokenResponse is the wire shape of the client-credentials grant.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// bearerToken returns a usable bearer token, refreshing through the
// accounts service when the cached one has expired.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if token, ok := c.tokens.Get(); ok {
		return token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access token")
	}

	ttl := time.Duration(tr.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	c.tokens.Set(tr.AccessToken, ttl)

	logger.Debug("[Spotify] refreshed bearer token", logger.Duration("ttl", ttl))
	return tr.AccessToken, nil
}
