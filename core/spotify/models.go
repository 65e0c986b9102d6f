package spotify

// Wire shapes of the Spotify Web API search responses. Optional fields
// are validated at the mapping boundary, not sniffed inline.

type searchResponse struct {
	Tracks    *trackPage    `json:"tracks"`
	Playlists *playlistPage `json:"playlists"`
}

type trackPage struct {
	Items []trackItem `json:"items"`
}

type playlistPage struct {
	Items []playlistItem `json:"items"`
}

type trackItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []artistItem `json:"artists"`
	Album        albumItem    `json:"album"`
	ExternalURLs externalURLs `json:"external_urls"`
	PreviewURL   *string      `json:"preview_url"`
}

type artistItem struct {
	Name string `json:"name"`
}

type albumItem struct {
	Name   string      `json:"name"`
	Images []imageItem `json:"images"`
}

type imageItem struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// playlistItem can arrive as null inside the items array; the mapper
// drops entries without an ID.
type playlistItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Owner        ownerItem    `json:"owner"`
	Images       []imageItem  `json:"images"`
	ExternalURLs externalURLs `json:"external_urls"`
	Tracks       trackRef     `json:"tracks"`
}

type ownerItem struct {
	DisplayName string `json:"display_name"`
}

type trackRef struct {
	Total int `json:"total"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}
