// Package api provides TMDB (The Movie Database) API integration for the movie catalog
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/cineflux/internal/models"
	"github.com/alvarorichard/cineflux/internal/util"
)

// TMDBBaseURL is the TMDB API base URL
const TMDBBaseURL = "https://api.themoviedb.org/3"

// ErrUnexpectedStatus is returned when TMDB answers with a non-200 status
var ErrUnexpectedStatus = errors.New("unexpected TMDB status")

// Mode selects which list endpoint a query hits
type Mode int

const (
	// ModePopular lists currently popular movies
	ModePopular Mode = iota
	// ModeSearch searches movies by title
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModePopular:
		return "popular"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Query is a list request derived from the search term
type Query struct {
	Mode Mode
	Term string
}

// RequestFor derives the list query for a search term.
// A term that is empty after trimming selects the popular list; otherwise the
// term is searched as typed.
func RequestFor(term string) Query {
	if strings.TrimSpace(term) == "" {
		return Query{Mode: ModePopular}
	}
	return Query{Mode: ModeSearch, Term: term}
}

// TMDBClient handles interactions with the TMDB API
type TMDBClient struct {
	client   *http.Client
	apiKey   string
	language string
	baseURL  string
}

// NewTMDBClient creates a new TMDB client. A nil httpClient uses the shared
// pooled client; an empty baseURL uses TMDBBaseURL.
func NewTMDBClient(httpClient *http.Client, apiKey, language, baseURL string) *TMDBClient {
	if httpClient == nil {
		httpClient = util.GetSharedClient()
	}
	if baseURL == "" {
		baseURL = TMDBBaseURL
	}
	return &TMDBClient{
		client:   httpClient,
		apiKey:   apiKey,
		language: language,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// ListURL builds the request URL for a list query
func (c *TMDBClient) ListURL(q Query) string {
	if q.Mode == ModeSearch {
		return fmt.Sprintf("%s/search/movie?%s&query=%s", c.baseURL, c.commonParams(), url.QueryEscape(q.Term))
	}
	return fmt.Sprintf("%s/movie/popular?%s", c.baseURL, c.commonParams())
}

// VideosURL builds the request URL for a movie's videos
func (c *TMDBClient) VideosURL(movieID int) string {
	return fmt.Sprintf("%s/movie/%d/videos?%s", c.baseURL, movieID, c.commonParams())
}

// FetchMovies runs the list query derived from term. A response without a
// results array yields an empty, non-nil slice.
func (c *TMDBClient) FetchMovies(ctx context.Context, term string) ([]models.Movie, error) {
	q := RequestFor(term)
	endpoint := c.ListURL(q)
	util.Debug("Requesting movie list", "mode", q.Mode, "term", q.Term)

	body, err := c.makeRequest(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("TMDB %s request failed: %w", q.Mode, err)
	}

	var result models.MovieList
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TMDB %s response: %w", q.Mode, err)
	}
	if result.Results == nil {
		return []models.Movie{}, nil
	}
	return result.Results, nil
}

// FetchVideos gets the videos (trailers, teasers, clips) attached to a movie
func (c *TMDBClient) FetchVideos(ctx context.Context, movieID int) ([]models.Video, error) {
	util.Debug("Requesting movie videos", "id", movieID)

	body, err := c.makeRequest(ctx, c.VideosURL(movieID))
	if err != nil {
		return nil, fmt.Errorf("failed to get videos for movie %d: %w", movieID, err)
	}

	var result models.VideoList
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse videos for movie %d: %w", movieID, err)
	}
	return result.Results, nil
}

func (c *TMDBClient) commonParams() string {
	return "api_key=" + url.QueryEscape(c.apiKey) + "&language=" + url.QueryEscape(c.language)
}

// makeRequest performs a GET against the TMDB API
func (c *TMDBClient) makeRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req) // #nosec G704
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "TMDB API returned status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
