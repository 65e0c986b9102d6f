package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "yt-key" {
			t.Errorf("missing api key, got %q", q.Get("key"))
		}
		if q.Get("videoDuration") != "medium" {
			t.Errorf("videoDuration = %q, want medium", q.Get("videoDuration"))
		}
		if q.Get("maxResults") != "4" {
			t.Errorf("maxResults = %q, want 4", q.Get("maxResults"))
		}
		w.Write([]byte(`{"items":[
			{"id":{"videoId":""},"snippet":{"title":"broken"}},
			{"id":{"videoId":"v1"},"snippet":{"title":"Guided Meditation","channelTitle":"Calm Minds",
			 "thumbnails":{"medium":{"url":"https://img/v1.jpg"}}}},
			{"id":{"videoId":"v2"},"snippet":{"title":"Breathing Practice","channelTitle":""}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(&Config{APIKey: "yt-key", APIURL: srv.URL})
	videos, err := client.SearchVideos(context.Background(), "breathing exercises for anxiety", 4)
	if err != nil {
		t.Fatalf("SearchVideos returned error: %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2 (missing videoId dropped)", len(videos))
	}

	first := videos[0]
	if first.ID != "v1" || first.Channel != "Calm Minds" {
		t.Errorf("video mapped wrong: %+v", first)
	}
	if first.Thumbnail == nil || *first.Thumbnail != "https://img/v1.jpg" {
		t.Errorf("thumbnail not mapped, got %v", first.Thumbnail)
	}
	if first.Link != "https://www.youtube.com/watch?v=v1" {
		t.Errorf("link = %q", first.Link)
	}

	second := videos[1]
	if second.Channel != "Unknown Channel" {
		t.Errorf("empty channel should fall back, got %q", second.Channel)
	}
	if second.Thumbnail != nil {
		t.Errorf("missing thumbnail should map to nil, got %v", *second.Thumbnail)
	}
}

func TestSearchVideosStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(&Config{APIKey: "k", APIURL: srv.URL})
	if _, err := client.SearchVideos(context.Background(), "q", 4); err == nil {
		t.Fatal("SearchVideos should surface non-200 responses as errors")
	}
}
