// Package imagelist holds the ordered image references of a product form.
//
// A List is treated as an immutable value: every transition returns a new List
// and leaves the receiver untouched, so handlers can apply operations to the
// list posted by the operator without any shared state.
package imagelist

import (
	"strings"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

// List is an ordered sequence of image references (URLs or data URIs).
// The first entry is the primary image.
type List []string

// New copies images into a fresh List.
func New(images []string) List {
	out := make(List, len(images))
	copy(out, images)
	return out
}

// Contains reports whether v is already present, compared exactly.
func (l List) Contains(v string) bool {
	for _, img := range l {
		if img == v {
			return true
		}
	}
	return false
}

// AddURL appends a trimmed URL. An exact duplicate leaves the list unchanged.
func (l List) AddURL(raw string) (List, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return New(l), domain.ErrEmptyImageURL
	}
	if l.Contains(url) {
		return New(l), nil
	}
	return append(New(l), url), nil
}

// Merge appends the values of batch that are not already present, keeping the
// existing order and then the batch order.
func (l List) Merge(batch []string) List {
	out := New(l)
	for _, v := range batch {
		if !out.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Replace swaps the value at index i, leaving the order unchanged.
func (l List) Replace(i int, v string) (List, error) {
	if i < 0 || i >= len(l) {
		return New(l), domain.ErrIndexOutOfRange
	}
	out := New(l)
	out[i] = v
	return out, nil
}

// Remove deletes the entry at index i. An invalid index is a no-op.
func (l List) Remove(i int) List {
	if i < 0 || i >= len(l) {
		return New(l)
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Reorder moves the entry at from so that it ends up at index to, shifting the
// entries in between. Equal or invalid indices leave the list unchanged.
func (l List) Reorder(from, to int) List {
	out := New(l)
	if from == to || from < 0 || to < 0 || from >= len(l) || to >= len(l) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(List{moved}, out[to:]...)...)
	return out
}

// Normalize trims every entry, drops empties and duplicates (first occurrence
// wins) and returns the surviving list together with its primary image.
func Normalize(entries []string) (List, string) {
	out := make(List, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		v := strings.TrimSpace(e)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	primary := ""
	if len(out) > 0 {
		primary = out[0]
	}
	return out, primary
}
