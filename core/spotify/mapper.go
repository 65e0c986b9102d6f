package spotify

import (
	"fmt"

	"Moosic/model"
)

// UnknownArtist is the display fallback when the upstream response omits
// the artist.
const UnknownArtist = "Unknown Artist"

// mapTrack projects a wire track into the domain shape, filling explicit
// fallbacks for absent optional fields.
func mapTrack(t trackItem) model.Track {
	artist := UnknownArtist
	if len(t.Artists) > 0 && t.Artists[0].Name != "" {
		artist = t.Artists[0].Name
	}

	var image *string
	if len(t.Album.Images) > 0 && t.Album.Images[0].URL != "" {
		url := t.Album.Images[0].URL
		image = &url
	}

	link := t.ExternalURLs.Spotify
	if link == "" {
		link = fmt.Sprintf("https://open.spotify.com/track/%s", t.ID)
	}

	return model.Track{
		ID:         t.ID,
		Title:      t.Name,
		Artist:     artist,
		Image:      image,
		Link:       link,
		PreviewURL: t.PreviewURL,
	}
}

// mapPlaylist projects a wire playlist into the domain shape.
func mapPlaylist(p playlistItem) model.Playlist {
	owner := p.Owner.DisplayName
	if owner == "" {
		owner = "Unknown Curator"
	}

	var image *string
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		url := p.Images[0].URL
		image = &url
	}

	link := p.ExternalURLs.Spotify
	if link == "" {
		link = fmt.Sprintf("https://open.spotify.com/playlist/%s", p.ID)
	}

	return model.Playlist{
		ID:          p.ID,
		Title:       p.Name,
		Owner:       owner,
		Image:       image,
		Link:        link,
		TrackCount:  p.Tracks.Total,
		Description: p.Description,
	}
}

// mapTracks projects a page of tracks, dropping items without a stable ID.
func mapTracks(items []trackItem) []model.Track {
	tracks := make([]model.Track, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		tracks = append(tracks, mapTrack(item))
	}
	return tracks
}

// mapPlaylists projects a page of playlists, dropping items without a
// stable ID.
func mapPlaylists(items []playlistItem) []model.Playlist {
	playlists := make([]model.Playlist, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		playlists = append(playlists, mapPlaylist(item))
	}
	return playlists
}
