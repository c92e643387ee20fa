package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTMDB records every request it receives and answers with a fixed body
type fakeTMDB struct {
	mu       sync.Mutex
	requests []*url.URL
	status   int
	body     string
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL)
	f.mu.Unlock()

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeTMDB) lastRequest(t *testing.T) *url.URL {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "expected at least one request")
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, fake *fakeTMDB) *TMDBClient {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewTMDBClient(server.Client(), "test-key", "pt-BR", server.URL)
}

func TestRequestFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		term     string
		expected Query
	}{
		{"", Query{Mode: ModePopular}},
		{"   ", Query{Mode: ModePopular}},
		{"\t\n", Query{Mode: ModePopular}},
		{"batman", Query{Mode: ModeSearch, Term: "batman"}},
		{" batman ", Query{Mode: ModeSearch, Term: " batman "}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RequestFor(tc.term), "term %q", tc.term)
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "popular", ModePopular.String())
	assert.Equal(t, "search", ModeSearch.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestListURL(t *testing.T) {
	t.Parallel()

	c := NewTMDBClient(http.DefaultClient, "KEY", "pt-BR", "")

	assert.Equal(t,
		"https://api.themoviedb.org/3/movie/popular?api_key=KEY&language=pt-BR",
		c.ListURL(RequestFor("")))
	assert.Equal(t,
		"https://api.themoviedb.org/3/search/movie?api_key=KEY&language=pt-BR&query=batman",
		c.ListURL(RequestFor("batman")))
	assert.Equal(t,
		"https://api.themoviedb.org/3/search/movie?api_key=KEY&language=pt-BR&query=the+dark+knight%26co",
		c.ListURL(RequestFor("the dark knight&co")))
}

func TestVideosURL(t *testing.T) {
	t.Parallel()

	c := NewTMDBClient(http.DefaultClient, "KEY", "en-US", "https://example.test/3/")
	assert.Equal(t, "https://example.test/3/movie/603/videos?api_key=KEY&language=en-US", c.VideosURL(603))
}

func TestFetchMovies_Popular(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"page":1,"results":[{"id":1,"title":"A"}]}`}
	client := newTestClient(t, fake)

	movies, err := client.FetchMovies(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, "A", movies[0].Title)

	req := fake.lastRequest(t)
	assert.Equal(t, "/movie/popular", req.Path)
	assert.Equal(t, "test-key", req.Query().Get("api_key"))
	assert.Equal(t, "pt-BR", req.Query().Get("language"))
	assert.False(t, req.Query().Has("query"))
}

func TestFetchMovies_Search(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"results":[{"id":268,"title":"Batman","vote_average":7.2}]}`}
	client := newTestClient(t, fake)

	movies, err := client.FetchMovies(context.Background(), "batman")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Batman", movies[0].Title)

	req := fake.lastRequest(t)
	assert.Equal(t, "/search/movie", req.Path)
	assert.Equal(t, "batman", req.Query().Get("query"))
}

func TestFetchMovies_MissingResults(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"status_message":"nothing here"}`}
	client := newTestClient(t, fake)

	movies, err := client.FetchMovies(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestFetchMovies_BadStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{status: http.StatusUnauthorized, body: `{"status_code":7}`}
	client := newTestClient(t, fake)

	_, err := client.FetchMovies(context.Background(), "batman")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "401")
}

func TestFetchMovies_BadJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"results":`}
	client := newTestClient(t, fake)

	_, err := client.FetchMovies(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestFetchMovies_CancelledContext(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"results":[]}`}
	client := newTestClient(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchMovies(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchVideos(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{body: `{"id":603,"results":[
		{"type":"Teaser","site":"YouTube","key":"x","name":"Teaser"},
		{"type":"Trailer","site":"YouTube","key":"y","name":"Official Trailer"}]}`}
	client := newTestClient(t, fake)

	videos, err := client.FetchVideos(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "x", videos[0].Key)
	assert.Equal(t, "Official Trailer", videos[1].Name)

	req := fake.lastRequest(t)
	assert.Equal(t, "/movie/603/videos", req.Path)
	assert.Equal(t, "test-key", req.Query().Get("api_key"))
}

func TestFetchVideos_ServerError(t *testing.T) {
	t.Parallel()

	fake := &fakeTMDB{status: http.StatusInternalServerError}
	client := newTestClient(t, fake)

	_, err := client.FetchVideos(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
}
