package imagelist

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	gifBytes = append([]byte("GIF89a"), make([]byte, 32)...)
)

func upload(name, contentType string, data []byte) Upload {
	return Upload{
		Filename:    name,
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func TestIngester_ReadEncodesDataURI(t *testing.T) {
	in := NewIngester(0)
	got, err := in.Read(context.Background(), []Upload{upload("a.png", "image/png", pngBytes)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected data uri: %v", got)
	}
}

func TestIngester_RejectsWholeBatchOnNonImage(t *testing.T) {
	var opened atomic.Int32
	counting := func(u Upload) Upload {
		open := u.Open
		u.Open = func() (io.ReadCloser, error) {
			opened.Add(1)
			return open()
		}
		return u
	}

	in := NewIngester(0)
	_, err := in.Read(context.Background(), []Upload{
		counting(upload("a.png", "image/png", pngBytes)),
		counting(upload("notes.txt", "text/plain", []byte("hello"))),
	})
	if !errors.Is(err, domain.ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got %v", err)
	}
	if opened.Load() != 0 {
		t.Fatalf("no file should be read when the batch is rejected, opened %d", opened.Load())
	}
}

func TestIngester_RejectsMislabelledContent(t *testing.T) {
	in := NewIngester(0)
	_, err := in.Read(context.Background(), []Upload{upload("fake.png", "image/png", []byte("plain text"))})
	if !errors.Is(err, domain.ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got %v", err)
	}
}

func TestIngester_RejectsOversizedFile(t *testing.T) {
	in := NewIngester(16)
	_, err := in.Read(context.Background(), []Upload{upload("big.png", "image/png", pngBytes)})
	if !errors.Is(err, domain.ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestIngester_KeepsSelectionOrder(t *testing.T) {
	slow := upload("slow.png", "image/png", pngBytes)
	open := slow.Open
	slow.Open = func() (io.ReadCloser, error) {
		time.Sleep(20 * time.Millisecond)
		return open()
	}
	fast := upload("fast.gif", "image/gif", gifBytes)

	in := NewIngester(0)
	got, err := in.Read(context.Background(), []Upload{slow, fast})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got[0], "data:image/png;") || !strings.HasPrefix(got[1], "data:image/gif;") {
		t.Fatalf("results out of selection order: %v", got)
	}
}

func TestIngester_AddUploadsMergesWithoutDuplicates(t *testing.T) {
	in := NewIngester(0)
	existing, err := in.Read(context.Background(), []Upload{upload("a.png", "image/png", pngBytes)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := List{"https://cdn/1.jpg", existing[0]}

	got, err := in.AddUploads(context.Background(), l, []Upload{
		upload("a-again.png", "image/png", pngBytes),
		upload("b.gif", "image/gif", gifBytes),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != l[0] || got[1] != l[1] || !strings.HasPrefix(got[2], "data:image/gif;") {
		t.Fatalf("unexpected merge result: %v", got)
	}
}

func TestIngester_ReplaceUpload(t *testing.T) {
	in := NewIngester(0)
	l := List{"a", "b"}

	same, err := in.ReplaceUpload(context.Background(), l, 0, nil)
	if err != nil || same[0] != "a" || same[1] != "b" {
		t.Fatalf("cancelled picker should be a no-op, got %v, %v", same, err)
	}

	u := upload("c.gif", "image/gif", gifBytes)
	got, err := in.ReplaceUpload(context.Background(), l, 1, &u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != "a" || !strings.HasPrefix(got[1], "data:image/gif;") {
		t.Fatalf("unexpected replace result: %v", got)
	}

	bad := upload("c.txt", "text/plain", []byte("x"))
	if _, err := in.ReplaceUpload(context.Background(), l, 1, &bad); !errors.Is(err, domain.ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got %v", err)
	}
	if _, err := in.ReplaceUpload(context.Background(), l, 5, &u); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}
