package imagelist

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

const defaultMaxBytes = 5 << 20

// Upload is one locally selected file.
type Upload struct {
	Filename    string
	ContentType string // as declared by the client
	Open        func() (io.ReadCloser, error)
}

// Ingester turns uploaded files into inline data URIs.
type Ingester struct {
	maxBytes int64
}

// NewIngester returns an Ingester rejecting files larger than maxBytes.
// A non-positive limit falls back to 5 MiB.
func NewIngester(maxBytes int64) *Ingester {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Ingester{maxBytes: maxBytes}
}

// Read validates the whole batch up front, then reads every file concurrently.
// Results keep the selection order regardless of which read finishes first.
func (in *Ingester) Read(ctx context.Context, uploads []Upload) ([]string, error) {
	for _, u := range uploads {
		if !isImageType(u.ContentType) {
			return nil, fmt.Errorf("%s: %w", u.Filename, domain.ErrInvalidImageType)
		}
	}

	out := make([]string, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range uploads {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			uri, err := in.encode(u)
			if err != nil {
				return fmt.Errorf("%s: %w", u.Filename, err)
			}
			out[i] = uri
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddUploads reads uploads and merges them into l.
func (in *Ingester) AddUploads(ctx context.Context, l List, uploads []Upload) (List, error) {
	values, err := in.Read(ctx, uploads)
	if err != nil {
		return New(l), err
	}
	return l.Merge(values), nil
}

// ReplaceUpload replaces the image at index i with the content of u.
// A nil upload means the picker was cancelled and leaves the list unchanged.
func (in *Ingester) ReplaceUpload(ctx context.Context, l List, i int, u *Upload) (List, error) {
	if u == nil {
		return New(l), nil
	}
	if i < 0 || i >= len(l) {
		return New(l), domain.ErrIndexOutOfRange
	}
	values, err := in.Read(ctx, []Upload{*u})
	if err != nil {
		return New(l), err
	}
	return l.Replace(i, values[0])
}

func (in *Ingester) encode(u Upload) (string, error) {
	rc, err := u.Open()
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, in.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if int64(len(data)) > in.maxBytes {
		return "", domain.ErrImageTooLarge
	}

	// The declared type decides acceptance; the sniffed type catches a renamed
	// non-image file.
	if detected := mimetype.Detect(data); !isImageType(detected.String()) {
		return "", domain.ErrInvalidImageType
	}

	mediaType := strings.TrimSpace(strings.SplitN(u.ContentType, ";", 2)[0])
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func isImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
