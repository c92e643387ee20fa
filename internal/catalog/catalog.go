// Package catalog keeps the movie list, the search term and the trailer and
// details selections in sync with the TMDB queries that feed them.
//
// Operations block until their request finishes; the UI runs them inside its
// own commands and reads Snapshot when it renders.
package catalog

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/alvarorichard/cineflux/internal/api"
	"github.com/alvarorichard/cineflux/internal/models"
	"github.com/alvarorichard/cineflux/internal/util"
)

var (
	// ErrTrailerBusy is returned when a trailer fetch is already in flight
	ErrTrailerBusy = errors.New("a trailer is already loading")
	// ErrTrailerNotFound is returned when a movie has no videos at all
	ErrTrailerNotFound = errors.New("trailer not found for this movie")
	// ErrNoDetails is returned when no movie details are open
	ErrNoDetails = errors.New("no movie details are open")
)

// Source is the remote side of the catalog
type Source interface {
	FetchMovies(ctx context.Context, term string) ([]models.Movie, error)
	FetchVideos(ctx context.Context, movieID int) ([]models.Video, error)
}

// State is a copy of the catalog state handed to renderers
type State struct {
	Movies     []models.Movie
	SearchTerm string
	Trailer    *models.Video
	Details    *models.Movie
	Loading    bool
}

// Option configures a Controller
type Option func(*Controller)

// WithNotifier sets where user-facing notices go
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithSearchTerm sets the search term used by Start
func WithSearchTerm(term string) Option {
	return func(c *Controller) { c.term = term }
}

// Controller is the catalog view state container
type Controller struct {
	source   Source
	notifier Notifier

	mu      sync.Mutex
	movies  []models.Movie
	term    string
	trailer *models.Video
	details *models.Movie
	loading bool

	// generation identifies the latest list request; older responses are dropped
	generation uint64
	cancelList context.CancelFunc

	listeners []func(State)
}

// New creates a controller backed by source
func New(source Source, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		notifier: NopNotifier{},
		movies:   []models.Movie{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to be called with a fresh snapshot after every state change
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := State{
		Movies:     make([]models.Movie, len(c.movies)),
		SearchTerm: c.term,
		Loading:    c.loading,
	}
	copy(s.Movies, c.movies)
	if c.trailer != nil {
		t := *c.trailer
		s.Trailer = &t
	}
	if c.details != nil {
		d := *c.details
		s.Details = &d
	}
	return s
}

// Start issues the list query for the current search term
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	term := c.term
	ctx, gen := c.beginListLocked(ctx)
	c.mu.Unlock()

	return c.loadMovies(ctx, gen, term)
}

// SetSearchTerm stores term and issues the matching list query. On failure
// the previous list stays in place and the error is logged and returned.
func (c *Controller) SetSearchTerm(ctx context.Context, term string) error {
	c.mu.Lock()
	c.term = term
	ctx, gen := c.beginListLocked(ctx)
	c.mu.Unlock()
	c.emit()

	return c.loadMovies(ctx, gen, term)
}

// beginListLocked starts a new list generation and cancels the request of
// the previous one, if it is still running.
func (c *Controller) beginListLocked(parent context.Context) (context.Context, uint64) {
	if c.cancelList != nil {
		c.cancelList()
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancelList = cancel
	c.generation++
	return ctx, c.generation
}

func (c *Controller) loadMovies(ctx context.Context, gen uint64, term string) error {
	movies, err := c.source.FetchMovies(ctx, term)

	c.mu.Lock()
	stale := gen != c.generation
	if !stale && c.cancelList != nil {
		c.cancelList()
		c.cancelList = nil
	}
	if err == nil && !stale {
		c.movies = movies
		if c.movies == nil {
			c.movies = []models.Movie{}
		}
	}
	c.mu.Unlock()

	if stale {
		util.Debug("Dropping superseded movie list response", "term", term, "generation", gen)
		return nil
	}
	if err != nil {
		util.Error("Failed to fetch movie list", "term", term, "err", err)
		return errors.Wrap(err, "movie list")
	}

	util.Debug("Movie list updated", "term", term, "count", len(movies))
	c.emit()
	return nil
}

// FetchTrailer resolves and opens the trailer of a movie. Only one trailer
// fetch runs at a time; Loading is true while it does.
func (c *Controller) FetchTrailer(ctx context.Context, movieID int) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrTrailerBusy
	}
	c.loading = true
	c.mu.Unlock()
	c.emit()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
		c.emit()
	}()

	videos, err := c.source.FetchVideos(ctx, movieID)
	if err != nil {
		util.Error("Failed to fetch trailer", "id", movieID, "err", err)
		c.notifier.Notify(Notice{Kind: NoticeTrailerFailed, MovieID: movieID, Err: err})
		return errors.Wrapf(err, "trailer for movie %d", movieID)
	}

	video, ok := api.SelectTrailer(videos)
	if !ok {
		util.Debug("No videos for movie", "id", movieID)
		c.notifier.Notify(Notice{Kind: NoticeTrailerNotFound, MovieID: movieID})
		return ErrTrailerNotFound
	}

	c.mu.Lock()
	c.trailer = &video
	c.mu.Unlock()
	return nil
}

// OpenTrailer shows a trailer without fetching; other selections are kept
func (c *Controller) OpenTrailer(video models.Video) {
	c.mu.Lock()
	c.trailer = &video
	c.mu.Unlock()
	c.emit()
}

// CloseTrailer clears the trailer selection only
func (c *Controller) CloseTrailer() {
	c.mu.Lock()
	c.trailer = nil
	c.mu.Unlock()
	c.emit()
}

// OpenDetails shows the details of movie; other selections are kept
func (c *Controller) OpenDetails(movie models.Movie) {
	c.mu.Lock()
	c.details = &movie
	c.mu.Unlock()
	c.emit()
}

// CloseDetails clears the details selection only
func (c *Controller) CloseDetails() {
	c.mu.Lock()
	c.details = nil
	c.mu.Unlock()
	c.emit()
}

// WatchTrailerFromDetails closes the details overlay and fetches the
// trailer of the movie that was shown in it.
func (c *Controller) WatchTrailerFromDetails(ctx context.Context) error {
	c.mu.Lock()
	if c.details == nil {
		c.mu.Unlock()
		return ErrNoDetails
	}
	movieID := c.details.ID
	c.details = nil
	c.mu.Unlock()
	c.emit()

	return c.FetchTrailer(ctx, movieID)
}

func (c *Controller) emit() {
	c.mu.Lock()
	if len(c.listeners) == 0 {
		c.mu.Unlock()
		return
	}
	state := c.snapshotLocked()
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
