package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alvarorichard/cineflux/internal/catalog"
	"github.com/alvarorichard/cineflux/internal/util"
)

type (
	// listLoadedMsg is sent when a list query finished, successfully or not
	listLoadedMsg struct{ err error }
	// trailerDoneMsg is sent when a trailer fetch finished
	trailerDoneMsg struct{ err error }
	// noticeMsg carries a notice the user must acknowledge
	noticeMsg catalog.Notice
	// stateChangedMsg tells the model to re-read the catalog snapshot
	stateChangedMsg struct{}
	// copiedMsg reports the outcome of a clipboard copy
	copiedMsg struct{ err error }
)

// NoticeQueue is a catalog.Notifier that hands notices to the UI event loop
type NoticeQueue struct {
	ch chan catalog.Notice
}

// NewNoticeQueue creates an empty queue
func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{ch: make(chan catalog.Notice, 8)}
}

// Notify enqueues n without blocking the caller
func (q *NoticeQueue) Notify(n catalog.Notice) {
	select {
	case q.ch <- n:
	default:
		util.Warn("Notice queue full, dropping notice", "kind", n.Kind, "id", n.MovieID)
	}
}

func (q *NoticeQueue) wait() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-q.ch)
	}
}

// changeSignal coalesces catalog change notifications into at most one pending message
type changeSignal chan struct{}

func newChangeSignal() changeSignal {
	return make(changeSignal, 1)
}

func (c changeSignal) notify(catalog.State) {
	select {
	case c <- struct{}{}:
	default:
	}
}

func (c changeSignal) wait() tea.Cmd {
	return func() tea.Msg {
		<-c
		return stateChangedMsg{}
	}
}
