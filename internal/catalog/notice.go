package catalog

import "fmt"

// NoticeKind identifies a user-facing notice
type NoticeKind int

const (
	// NoticeTrailerNotFound means the movie has no videos
	NoticeTrailerNotFound NoticeKind = iota + 1
	// NoticeTrailerFailed means the videos request failed
	NoticeTrailerFailed
)

// Notice is a blocking message the user has to acknowledge
type Notice struct {
	Kind    NoticeKind
	MovieID int
	Err     error
}

// Message returns the text shown to the user
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeTrailerNotFound:
		return "Trailer not found for this movie"
	case NoticeTrailerFailed:
		return "Failed to load trailer"
	default:
		return fmt.Sprintf("unknown notice %d", n.Kind)
	}
}

// Notifier surfaces notices to the user
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notice)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notice) { f(n) }

// NopNotifier drops every notice
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(Notice) {}
