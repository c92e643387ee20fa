// Package presence mirrors what the user is browsing to Discord Rich Presence
package presence

import (
	"fmt"
	"sync"
	"time"

	"github.com/tr1xem/go-discordrpc/client"

	"github.com/alvarorichard/cineflux/internal/catalog"
	"github.com/alvarorichard/cineflux/internal/util"
)

// DiscordClientID is the Discord application client ID
const DiscordClientID = "1302721937717334128"

const logoURL = "https://www.themoviedb.org/assets/2/v4/logos/v2/blue_square_2-d537fb228cf3ded904ef09b136fe3fec72548ebc1fea3fbbd1ad9e36364db38b.svg"

// activityClient is the part of the Discord client the manager uses
type activityClient interface {
	SetActivity(activity client.Activity) error
	Logout() error
}

// Manager owns the Discord connection and the last published activity
type Manager struct {
	mu        sync.Mutex
	client    activityClient
	enabled   bool
	startedAt time.Time
	last      string
}

// NewManager creates a disabled manager; call Initialize to connect
func NewManager() *Manager {
	return &Manager{}
}

// Initialize logs into Discord RPC. A failure leaves the manager disabled.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return nil
	}

	initTime := time.Now()
	c := client.NewClient(DiscordClientID)
	if err := c.Login(); err != nil {
		return fmt.Errorf("discord login failed: %w", err)
	}

	m.client = c
	m.enabled = true
	m.startedAt = initTime
	util.Debug("Discord Rich Presence initialized", "took", time.Since(initTime))
	return nil
}

// Shutdown logs out from Discord RPC
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	if err := m.client.Logout(); err != nil {
		util.Debug("Discord logout failed", "err", err)
	}
	m.enabled = false
	m.client = nil
	m.last = ""
	util.Debug("Discord Rich Presence shutdown completed")
}

// IsEnabled reports whether presence updates are being published
func (m *Manager) IsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Reflect publishes the activity matching a catalog state. It is meant to be
// passed to catalog.Controller.Subscribe; repeated states are not re-sent.
func (m *Manager) Reflect(state catalog.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}

	activity := activityFor(state, m.startedAt)
	key := activity.Details + "\x00" + activity.State
	if key == m.last {
		return
	}

	if err := m.client.SetActivity(activity); err != nil {
		util.Debug("Failed to update Discord presence", "err", err)
		return
	}
	m.last = key
}

// activityFor builds the Discord activity for a catalog state.
// An open trailer wins over open details, which win over the list.
func activityFor(state catalog.State, since time.Time) client.Activity {
	activity := client.Activity{
		Type:       3, // Watching
		Name:       "CineFlux",
		LargeImage: logoURL,
		LargeText:  "CineFlux",
	}
	if !since.IsZero() {
		start := since
		activity.Timestamps = &client.Timestamps{Start: &start}
	}

	switch {
	case state.Trailer != nil:
		activity.Details = "Watching a trailer"
		activity.State = state.Trailer.Name
		if state.Trailer.Key != "" {
			activity.Buttons = []*client.Button{{
				Label: "Watch on YouTube",
				Url:   state.Trailer.GetWatchURL(),
			}}
		}
	case state.Details != nil:
		activity.Details = "Reading about a movie"
		activity.State = state.Details.Title
		activity.Buttons = []*client.Button{{
			Label: "View on TMDB",
			Url:   state.Details.GetTMDBURL(),
		}}
	case state.SearchTerm != "":
		activity.Details = "Searching movies"
		activity.State = fmt.Sprintf("%q", state.SearchTerm)
	default:
		activity.Details = "Browsing popular movies"
	}

	return activity
}
