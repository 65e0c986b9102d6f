package recommend

import (
	"context"
	"sync"

	"Moosic/core/mood"
	"Moosic/logger"
	"Moosic/model"
)

// Result caps and search limits for the fan-out.
const (
	maxMusicTerms       = 2
	trackSearchLimit    = 3
	playlistSearchLimit = 2
	maxTracks           = 6
	maxPlaylists        = 4
	videoSearchLimit    = 4
	bookSearchLimit     = 4

	// playlistQualifier steers playlist searches toward therapeutic content.
	playlistQualifier = " therapy wellness"
)

// MusicSource is the music-catalog dependency of the aggregator.
type MusicSource interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]model.Track, error)
	SearchPlaylists(ctx context.Context, query string, limit int) ([]model.Playlist, error)
}

// VideoSource is the video-catalog dependency of the aggregator.
type VideoSource interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error)
}

// BookSource is the book-catalog dependency of the aggregator.
type BookSource interface {
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
}

// Aggregator derives search terms from a mood analysis and queries the
// three content sources, tolerating independent failures.
type Aggregator struct {
	music  MusicSource
	videos VideoSource
	books  BookSource
}

// NewAggregator constructs an Aggregator.
func NewAggregator(music MusicSource, videos VideoSource, books BookSource) *Aggregator {
	return &Aggregator{
		music:  music,
		videos: videos,
		books:  books,
	}
}

// Per-source results. Each sub-fetch produces a success/failure value so
// the fold below can make the "never fails as a whole" contract explicit.
type musicResult struct {
	tracks    []model.Track
	playlists []model.Playlist
	err       error
}

type videoResult struct {
	videos []model.Video
	err    error
}

type bookResult struct {
	books []model.Book
	err   error
}

// Recommend assembles the recommendation bundle for an analysis text.
// The three categories run concurrently; a failed or slow category
// degrades to an empty list and never blocks or nulls its siblings.
func (a *Aggregator) Recommend(ctx context.Context, analysisText string) model.RecommendationBundle {
	category, terms := mood.CategorizeTerms(analysisText)

	logger.Info("[Recommend] assembling bundle",
		logger.String("category", string(category)))

	musicCh := make(chan musicResult, 1)
	videoCh := make(chan videoResult, 1)
	bookCh := make(chan bookResult, 1)

	go func() {
		tracks, playlists, err := a.fetchMusic(ctx, terms.MusicTerms)
		musicCh <- musicResult{tracks: tracks, playlists: playlists, err: err}
	}()
	go func() {
		videos, err := a.videos.SearchVideos(ctx, terms.VideoQuery, videoSearchLimit)
		videoCh <- videoResult{videos: videos, err: err}
	}()
	go func() {
		found, err := a.books.SearchBooks(ctx, terms.BookQuery, bookSearchLimit)
		bookCh <- bookResult{books: found, err: err}
	}()

	// Fold: failures default to empty slices, logged as soft warnings.
	bundle := model.RecommendationBundle{
		Songs:     []model.Track{},
		Playlists: []model.Playlist{},
		Videos:    []model.Video{},
		Books:     []model.Book{},
	}

	if mr := <-musicCh; mr.err != nil {
		logger.Warn("[Recommend] music source failed", logger.ErrorField(mr.err))
	} else {
		bundle.Songs = mr.tracks
		bundle.Playlists = mr.playlists
	}

	if vr := <-videoCh; vr.err != nil {
		logger.Warn("[Recommend] video source failed", logger.ErrorField(vr.err))
	} else if vr.videos != nil {
		bundle.Videos = vr.videos
	}

	if br := <-bookCh; br.err != nil {
		logger.Warn("[Recommend] book source failed", logger.ErrorField(br.err))
	} else if br.books != nil {
		bundle.Books = br.books
	}

	return bundle
}

// fetchMusic runs the music unit: parallel track searches for up to the
// first two terms, plus playlist searches for the same terms with the
// therapeutic qualifier appended. Any failed search fails the whole unit;
// results are flattened in term order and capped.
func (a *Aggregator) fetchMusic(ctx context.Context, musicTerms []string) ([]model.Track, []model.Playlist, error) {
	terms := musicTerms
	if len(terms) > maxMusicTerms {
		terms = terms[:maxMusicTerms]
	}

	trackPages := make([][]model.Track, len(terms))
	playlistPages := make([][]model.Playlist, len(terms))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for i, term := range terms {
		wg.Add(2)
		go func(i int, term string) {
			defer wg.Done()
			tracks, err := a.music.SearchTracks(ctx, term, trackSearchLimit)
			if err != nil {
				record(err)
				return
			}
			trackPages[i] = tracks
		}(i, term)
		go func(i int, term string) {
			defer wg.Done()
			playlists, err := a.music.SearchPlaylists(ctx, term+playlistQualifier, playlistSearchLimit)
			if err != nil {
				record(err)
				return
			}
			playlistPages[i] = playlists
		}(i, term)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}

	tracks := make([]model.Track, 0, maxTracks)
	for _, page := range trackPages {
		for _, t := range page {
			if len(tracks) >= maxTracks {
				break
			}
			tracks = append(tracks, t)
		}
	}

	playlists := make([]model.Playlist, 0, maxPlaylists)
	for _, page := range playlistPages {
		for _, p := range page {
			if len(playlists) >= maxPlaylists {
				break
			}
			playlists = append(playlists, p)
		}
	}

	return tracks, playlists, nil
}
