// Package models contains TMDB (The Movie Database) data structures
package models

import (
	"fmt"
	"strings"
)

// PosterBaseURL is the TMDB image prefix used for card posters
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// overviewPreviewLen is how many runes of the overview a card shows
const overviewPreviewLen = 120

// Movie represents a movie in TMDB list results
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
}

// MovieList is the envelope returned by the popular and search endpoints
type MovieList struct {
	Page         int     `json:"page"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
	Results      []Movie `json:"results"`
}

// GetPosterURL returns the full poster URL, or "" when the movie has no poster
func (m *Movie) GetPosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return PosterBaseURL + m.PosterPath
}

// GetReleaseYear returns the release year
func (m *Movie) GetReleaseYear() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

// GetRating returns the vote average with one decimal
func (m *Movie) GetRating() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// GetShortOverview returns the card preview of the overview
func (m *Movie) GetShortOverview() string {
	runes := []rune(strings.TrimSpace(m.Overview))
	if len(runes) > overviewPreviewLen {
		runes = runes[:overviewPreviewLen]
	}
	return string(runes) + "..."
}

// GetTMDBURL returns the movie page on themoviedb.org
func (m *Movie) GetTMDBURL() string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", m.ID)
}
