// Package listing tracks the state of a re-fetched collection view.
package listing

import "time"

// Status of a collection view.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// State is the outcome of the latest fetch. An error state carries no items,
// so "empty" and "failed" stay distinguishable.
type State[T any] struct {
	Items         []T
	Status        Status
	LastFetchedAt time.Time
	Err           error
}

// Loaded returns a successful state fetched at now.
func Loaded[T any](items []T, now time.Time) State[T] {
	if items == nil {
		items = []T{}
	}
	return State[T]{Items: items, Status: StatusLoaded, LastFetchedAt: now}
}

// Failed returns an error state for a fetch attempted at now.
func Failed[T any](err error, now time.Time) State[T] {
	return State[T]{Items: []T{}, Status: StatusError, LastFetchedAt: now, Err: err}
}
