package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Moosic/model"
)

// DefaultAPIURL is the Google Books volumes endpoint.
const DefaultAPIURL = "https://www.googleapis.com/books/v1/volumes"

// Config contains configuration for the book-catalog client.
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// Client is a book-catalog client for the Google Books API. The volumes
// endpoint needs no credential for plain searches.
type Client struct {
	httpClient *http.Client
	apiURL     string
}

// NewClient creates a book-catalog client.
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
	}
}

// Wire shapes of the volumes response. Only the fields we read.
type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title      string      `json:"title"`
	Authors    []string    `json:"authors"`
	InfoLink   string      `json:"infoLink"`
	ImageLinks *imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// SearchBooks searches for volumes matching the query, ordered by
// relevance.
func (c *Client) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	searchURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(limit))
	q.Set("orderBy", "relevance")
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

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	booksOut := make([]model.Book, 0, len(vr.Items))
	for _, item := range vr.Items {
		if item.ID == "" {
			continue
		}
		booksOut = append(booksOut, mapBook(item))
	}
	return booksOut, nil
}

// mapBook projects a wire volume into the domain shape, joining multiple
// authors into one display string.
func mapBook(item volumeItem) model.Book {
	authors := strings.Join(item.VolumeInfo.Authors, ", ")
	if authors == "" {
		authors = "Unknown Author"
	}

	var thumb *string
	if item.VolumeInfo.ImageLinks != nil {
		switch {
		case item.VolumeInfo.ImageLinks.Thumbnail != "":
			url := item.VolumeInfo.ImageLinks.Thumbnail
			thumb = &url
		case item.VolumeInfo.ImageLinks.SmallThumbnail != "":
			url := item.VolumeInfo.ImageLinks.SmallThumbnail
			thumb = &url
		}
	}

	link := item.VolumeInfo.InfoLink
	if link == "" {
		link = fmt.Sprintf("https://books.google.com/books?id=%s", item.ID)
	}

	return model.Book{
		ID:        item.ID,
		Title:     item.VolumeInfo.Title,
		Authors:   authors,
		Thumbnail: thumb,
		Link:      link,
	}
}
