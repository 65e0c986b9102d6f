package youtube

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

// DefaultAPIURL is the YouTube Data API v3 search endpoint.
const DefaultAPIURL = "https://www.googleapis.com/youtube/v3/search"

// Config contains configuration for the YouTube client.
type Config struct {
	APIKey  string
	APIURL  string
	Timeout time.Duration
}

// Client is a video-catalog client for the YouTube Data API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewClient creates a YouTube client.
func NewClient(config *Config) *Client {
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     config.APIKey,
	}
}

// Wire shapes of the search response. Only the fields we read.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      videoID `json:"id"`
	Snippet snippet `json:"snippet"`
}

type videoID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	Medium  *thumbnail `json:"medium"`
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// SearchVideos searches for medium-duration videos matching the query.
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error) {
	searchURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("videoDuration", "medium")
	q.Set("maxResults", strconv.Itoa(limit))
	q.Set("key", c.apiKey)
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

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

	videos := make([]model.Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, mapVideo(item))
	}
	return videos, nil
}

// mapVideo projects a wire item into the domain shape.
func mapVideo(item searchItem) model.Video {
	channel := item.Snippet.ChannelTitle
	if channel == "" {
		channel = "Unknown Channel"
	}

	var thumb *string
	switch {
	case item.Snippet.Thumbnails.Medium != nil && item.Snippet.Thumbnails.Medium.URL != "":
		url := item.Snippet.Thumbnails.Medium.URL
		thumb = &url
	case item.Snippet.Thumbnails.Default != nil && item.Snippet.Thumbnails.Default.URL != "":
		url := item.Snippet.Thumbnails.Default.URL
		thumb = &url
	}

	return model.Video{
		ID:        item.ID.VideoID,
		Title:     item.Snippet.Title,
		Channel:   channel,
		Thumbnail: thumb,
		Link:      fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.ID.VideoID),
	}
}
