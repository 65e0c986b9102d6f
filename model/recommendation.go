package model

// Normalized projections of the external content services. Fields the
// upstream response omits are filled with explicit fallbacks, never left
// empty by accident.

// Track is a single song recommendation from the music catalog.
type Track struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Image      *string `json:"image"`
	Link       string  `json:"link"`
	PreviewURL *string `json:"previewUrl"`
}

// Playlist is a curated playlist recommendation from the music catalog.
type Playlist struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Owner       string  `json:"owner"`
	Image       *string `json:"image"`
	Link        string  `json:"link"`
	TrackCount  int     `json:"trackCount"`
	Description string  `json:"description,omitempty"`
}

// Video is a video recommendation from the video catalog.
type Video struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Channel   string  `json:"channel"`
	Thumbnail *string `json:"thumbnail"`
	Link      string  `json:"link"`
}

// Book is a book recommendation from the book catalog.
type Book struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Authors   string  `json:"authors"`
	Thumbnail *string `json:"thumbnail"`
	Link      string  `json:"link"`
}

// RecommendationBundle is the aggregated, categorized set of content
// suggested for one mood analysis. Each list is populated independently;
// an empty list means that source failed or returned nothing, never that
// the bundle as a whole failed.
type RecommendationBundle struct {
	Songs     []Track    `json:"songs"`
	Playlists []Playlist `json:"playlists"`
	Videos    []Video    `json:"videos"`
	Books     []Book     `json:"books"`
}
