package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchBooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("orderBy") != "relevance" {
			t.Errorf("orderBy = %q, want relevance", q.Get("orderBy"))
		}
		w.Write([]byte(`{"items":[
			{"id":"","volumeInfo":{"title":"no id"}},
			{"id":"b1","volumeInfo":{"title":"Mindfulness for Beginners",
			 "authors":["Jon Kabat-Zinn"],
			 "infoLink":"https://books.google.com/books?id=b1",
			 "imageLinks":{"thumbnail":"https://img/b1.jpg"}}},
			{"id":"b2","volumeInfo":{"title":"Team Effort",
			 "authors":["A. One","B. Two"]}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(&Config{APIURL: srv.URL})
	found, err := client.SearchBooks(context.Background(), "mindfulness", 4)
	if err != nil {
		t.Fatalf("SearchBooks returned error: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("got %d books, want 2 (missing id dropped)", len(found))
	}

	first := found[0]
	if first.Authors != "Jon Kabat-Zinn" {
		t.Errorf("authors = %q", first.Authors)
	}
	if first.Thumbnail == nil || *first.Thumbnail != "https://img/b1.jpg" {
		t.Errorf("thumbnail not mapped, got %v", first.Thumbnail)
	}

	second := found[1]
	if second.Authors != "A. One, B. Two" {
		t.Errorf("multiple authors should join with a comma, got %q", second.Authors)
	}
	if second.Thumbnail != nil {
		t.Error("missing image links should map to nil thumbnail")
	}
	if second.Link == "" {
		t.Error("missing infoLink should still yield a link")
	}
}

func TestSearchBooksNoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems":0}`))
	}))
	defer srv.Close()

	client := NewClient(&Config{APIURL: srv.URL})
	found, err := client.SearchBooks(context.Background(), "obscure", 4)
	if err != nil {
		t.Fatalf("SearchBooks returned error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("got %d books, want 0", len(found))
	}
}
