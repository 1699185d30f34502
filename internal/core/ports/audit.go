package ports

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

// AuditSink accepts audit records without blocking the caller on storage.
type AuditSink interface {
	Record(rec domain.AuditRecord)
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Insert(ctx context.Context, rec domain.AuditRecord) error
}
