package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fakeSpotify serves the token endpoint plus a canned search response and
// counts token requests.
func fakeSpotify(t *testing.T, searchBody string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var tokenHits atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		tokenHits.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("token endpoint expected POST, got %s", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Errorf("token endpoint missing basic auth, got %q/%q", user, pass)
		}
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("search missing bearer token, got %q", got)
		}
		w.Write([]byte(searchBody))
	})

	return httptest.NewServer(mux), &tokenHits
}

func newTestSpotify(srv *httptest.Server, tokens *TokenCache) *Client {
	return NewClient(&Config{
		ClientID:     "id",
		ClientSecret: "secret",
		AuthURL:      srv.URL + "/api/token",
		APIURL:       srv.URL + "/v1",
	}, tokens)
}

func TestSearchTracksReusesCachedToken(t *testing.T) {
	srv, tokenHits := fakeSpotify(t, `{"tracks":{"items":[]}}`)
	defer srv.Close()

	client := newTestSpotify(srv, NewTokenCache())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.SearchTracks(ctx, "calming ambient", 3); err != nil {
			t.Fatalf("SearchTracks returned error: %v", err)
		}
	}

	if got := tokenHits.Load(); got != 1 {
		t.Errorf("token endpoint hit %d times, want 1 (cached token reused)", got)
	}
}

func TestExpiredTokenIsRefreshed(t *testing.T) {
	srv, tokenHits := fakeSpotify(t, `{"tracks":{"items":[]}}`)
	defer srv.Close()

	tokens := NewTokenCache()
	// A one-second lifetime lands behind the 30s safety margin, so the
	// cached value is already stale.
	tokens.Set("stale", time.Second)

	client := newTestSpotify(srv, tokens)
	if _, err := client.SearchTracks(context.Background(), "sleep music", 3); err != nil {
		t.Fatalf("SearchTracks returned error: %v", err)
	}

	if got := tokenHits.Load(); got != 1 {
		t.Errorf("token endpoint hit %d times, want 1 (stale token refreshed)", got)
	}
}

func TestSearchTracksFiltersAndFallbacks(t *testing.T) {
	// One track without an id (dropped), one with no artists and no album
	// image (fallbacks applied), one fully populated.
	body := `{"tracks":{"items":[
		{"id":"","name":"Ghost"},
		{"id":"t1","name":"Quiet Morning","artists":[],"album":{"images":[]}},
		{"id":"t2","name":"Evening Walk","artists":[{"name":"Ana Lira"}],
		 "album":{"images":[{"url":"https://img/cover.jpg"}]},
		 "external_urls":{"spotify":"https://open.spotify.com/track/t2"},
		 "preview_url":"https://p/t2.mp3"}
	]}}`

	srv, _ := fakeSpotify(t, body)
	defer srv.Close()

	client := newTestSpotify(srv, NewTokenCache())
	tracks, err := client.SearchTracks(context.Background(), "quiet", 3)
	if err != nil {
		t.Fatalf("SearchTracks returned error: %v", err)
	}

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2 (item without id dropped)", len(tracks))
	}

	bare := tracks[0]
	if bare.Artist != UnknownArtist {
		t.Errorf("missing artist should fall back to %q, got %q", UnknownArtist, bare.Artist)
	}
	if bare.Image != nil {
		t.Errorf("missing album image should map to nil, got %v", *bare.Image)
	}
	if bare.Link == "" {
		t.Error("missing external url should still yield a link")
	}

	full := tracks[1]
	if full.Artist != "Ana Lira" {
		t.Errorf("artist = %q, want Ana Lira", full.Artist)
	}
	if full.Image == nil || *full.Image != "https://img/cover.jpg" {
		t.Errorf("image not mapped, got %v", full.Image)
	}
	if full.PreviewURL == nil || *full.PreviewURL != "https://p/t2.mp3" {
		t.Errorf("preview url not mapped, got %v", full.PreviewURL)
	}
}

func TestSearchPlaylists(t *testing.T) {
	body := `{"playlists":{"items":[
		{"id":"","name":"null entry"},
		{"id":"p1","name":"Therapy Sounds","owner":{"display_name":"Moosic"},
		 "images":[{"url":"https://img/p1.jpg"}],
		 "external_urls":{"spotify":"https://open.spotify.com/playlist/p1"},
		 "tracks":{"total":42},"description":"calm picks"}
	]}}`

	srv, _ := fakeSpotify(t, body)
	defer srv.Close()

	client := newTestSpotify(srv, NewTokenCache())
	playlists, err := client.SearchPlaylists(context.Background(), "calm therapy wellness", 2)
	if err != nil {
		t.Fatalf("SearchPlaylists returned error: %v", err)
	}

	if len(playlists) != 1 {
		t.Fatalf("got %d playlists, want 1", len(playlists))
	}
	p := playlists[0]
	if p.ID != "p1" || p.Title != "Therapy Sounds" || p.Owner != "Moosic" || p.TrackCount != 42 {
		t.Errorf("playlist mapped wrong: %+v", p)
	}
}

func TestSearchFailsOnTokenError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestSpotify(srv, NewTokenCache())
	if _, err := client.SearchTracks(context.Background(), "q", 3); err == nil {
		t.Fatal("SearchTracks should fail when the token cannot be acquired")
	}
}
