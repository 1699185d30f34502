package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopdesk/store-admin/internal/core/listing"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// textNumber keeps the operator's literal input for a numeric field. It
// accepts both a JSON string and a JSON number; parsing happens in the form.
type textNumber string

func (n *textNumber) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = textNumber(s)
		return nil
	}
	*n = textNumber(b)
	return nil
}

// listResponse is the rendering of a collection view. An error state keeps
// rows empty and carries the message, so it never reads as an empty catalog.
type listResponse[T any] struct {
	Status        listing.Status `json:"status"`
	LastFetchedAt *time.Time     `json:"lastFetchedAt,omitempty"`
	Error         string         `json:"error,omitempty"`
	Rows          []T            `json:"rows"`
}

func newListResponse[S, T any](state listing.State[S], row func(S) T, errMsg string) listResponse[T] {
	resp := listResponse[T]{Status: state.Status, Rows: make([]T, 0, len(state.Items))}
	if !state.LastFetchedAt.IsZero() {
		at := state.LastFetchedAt.UTC()
		resp.LastFetchedAt = &at
	}
	if state.Err != nil {
		resp.Error = errMsg
	}
	for _, item := range state.Items {
		resp.Rows = append(resp.Rows, row(item))
	}
	return resp
}
